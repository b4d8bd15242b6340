package timer

import (
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/api"
	"github.com/zolten95/project-man/internal/services/timer"
)

// RegisterRoutes registers all live timer related routes
func RegisterRoutes(router *gin.RouterGroup, timerService *timer.TimerService) {
	handler := NewTimerHandler(timerService)

	timerGroup := router.Group("/timer")
	timerGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		timerGroup.POST("/start", handler.StartTimer)     // Start tracking a task
		timerGroup.POST("/stop", handler.StopTimer)       // Stop and record the entry
		timerGroup.GET("/active", handler.GetActiveTimer) // Resume state after reload
	}
}
