package team

import (
	"errors"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/services/team"
)

type TeamHandler struct {
	teamService *team.TeamService
}

func NewTeamHandler(teamService *team.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	if _, exists := keycloakauth.GetUserID(c); !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	members, err := h.teamService.ListMembers()
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	memberResponses := TeamMembersToResponse(members)
	responses.Success(c, "Team members retrieved successfully", gin.H{
		"members": memberResponses,
		"total":   len(memberResponses),
	})
}

func (h *TeamHandler) GetProfile(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	member, err := h.teamService.GetProfile(userID)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Profile retrieved successfully", TeamMemberToResponse(member))
}

func (h *TeamHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	member, err := h.teamService.UpdateProfile(userID, userID, req.ToInput())
	if err != nil {
		if errors.Is(err, team.ErrAccessDenied) {
			responses.Forbidden(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Profile updated successfully", TeamMemberToResponse(member))
}
