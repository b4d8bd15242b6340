package timesheet

import (
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/api"
	"github.com/zolten95/project-man/internal/services/timesheet"
)

// RegisterRoutes registers all timesheet related routes
func RegisterRoutes(router *gin.RouterGroup, timesheetService *timesheet.TimesheetService) {
	handler := NewTimesheetHandler(timesheetService)

	timesheetGroup := router.Group("/timesheet")
	timesheetGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		timesheetGroup.GET("/report", handler.GetReport)  // Aggregated grid for a date range
		timesheetGroup.PUT("/cell", handler.SetCell)      // Edit one task/day cell
		timesheetGroup.DELETE("/day", handler.DeleteDay)  // Clear one task/day cell
	}
}
