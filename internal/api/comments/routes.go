package comments

import (
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/api"
	"github.com/zolten95/project-man/internal/services/comments"
)

// RegisterRoutes registers all task comment related routes
func RegisterRoutes(router *gin.RouterGroup, commentService *comments.CommentService) {
	handler := NewCommentHandler(commentService)

	// Nested under the task for create/list
	taskComments := router.Group("/tasks/:id/comments")
	taskComments.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		taskComments.POST("", handler.CreateComment)
		taskComments.GET("", handler.ListComments)
	}

	// Flat for author edits
	commentsGroup := router.Group("/comments")
	commentsGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		commentsGroup.PUT("/:id", handler.UpdateComment)
		commentsGroup.DELETE("/:id", handler.DeleteComment)
	}
}
