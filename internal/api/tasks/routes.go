package tasks

import (
	"github.com/gin-gonic/gin"

	"github.com/zolten95/project-man/internal/api"
	"github.com/zolten95/project-man/internal/services/tasks"
)

// RegisterRoutes registers all task board related routes
func RegisterRoutes(router *gin.RouterGroup, taskService *tasks.TaskService) {
	handler := NewTaskHandler(taskService)

	tasksGroup := router.Group("/tasks")
	tasksGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)

	{
		// Task CRUD
		tasksGroup.POST("", handler.CreateTask)       // Create task
		tasksGroup.GET("", handler.ListTasks)         // List own (or ?all=true) tasks
		tasksGroup.GET("/:id", handler.GetTask)       // Get task with comments
		tasksGroup.PUT("/:id", handler.UpdateTask)    // Update task fields
		tasksGroup.DELETE("/:id", handler.DeleteTask) // Delete task

		// Board column moves
		tasksGroup.PATCH("/:id/status", handler.ChangeStatus)
	}
}
