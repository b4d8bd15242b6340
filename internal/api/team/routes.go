package team

import (
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/api"
	"github.com/zolten95/project-man/internal/services/team"
)

// RegisterRoutes registers all workspace roster related routes
func RegisterRoutes(router *gin.RouterGroup, teamService *team.TeamService) {
	handler := NewTeamHandler(teamService)

	teamGroup := router.Group("/team")
	teamGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		teamGroup.GET("", handler.ListMembers)           // Workspace roster
		teamGroup.GET("/profile", handler.GetProfile)    // Own profile
		teamGroup.PUT("/profile", handler.UpdateProfile) // Edit own profile
	}
}
