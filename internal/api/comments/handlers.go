package comments

import (
	"errors"
	"strconv"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zolten95/project-man/internal/services/comments"
)

type CommentHandler struct {
	commentService *comments.CommentService
}

func NewCommentHandler(commentService *comments.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	comment, err := h.commentService.Create(uint(taskID), req.Body, userID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	responses.Created(c, "Comment created successfully", CommentToResponse(comment))
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}

	if _, exists := keycloakauth.GetUserID(c); !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	commentList, err := h.commentService.ListByTask(uint(taskID))
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	commentResponses := CommentsToResponse(commentList)
	responses.Success(c, "Comments retrieved successfully", gin.H{
		"comments": commentResponses,
		"total":    len(commentResponses),
	})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid comment ID")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	comment, err := h.commentService.Update(uint(id), req.Body, userID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	responses.Success(c, "Comment updated successfully", CommentToResponse(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid comment ID")
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.commentService.Delete(uint(id), userID); err != nil {
		respondCommentError(c, err)
		return
	}

	responses.Success(c, "Comment deleted successfully", nil)
}

// Helpers

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, comments.ErrEmptyBody):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, comments.ErrAccessDenied):
		responses.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		responses.NotFound(c, err.Error())
	default:
		responses.InternalError(c, err.Error())
	}
}
