package entries

import (
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/api"
	"github.com/zolten95/project-man/internal/services/entries"
)

// RegisterRoutes registers all manual time entry related routes
func RegisterRoutes(router *gin.RouterGroup, entryService *entries.TimeEntryService) {
	handler := NewTimeEntryHandler(entryService)

	entriesGroup := router.Group("/entries")
	entriesGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		entriesGroup.POST("", handler.CreateTimeEntry)       // Manual entry submission
		entriesGroup.GET("", handler.ListTimeEntries)        // Own entries, optional date filters
		entriesGroup.DELETE("/:id", handler.DeleteTimeEntry) // Delete a single entry
	}
}
