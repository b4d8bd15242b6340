package tasks

import (
	"errors"
	"strconv"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zolten95/project-man/internal/db"
	"github.com/zolten95/project-man/internal/services/tasks"
)

type TaskHandler struct {
	taskService *tasks.TaskService
}

func NewTaskHandler(taskService *tasks.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	task, err := h.taskService.Create(req.ToInput(), userID)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Created(c, "Task created successfully", TaskToResponse(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}

	if _, exists := keycloakauth.GetUserID(c); !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		responses.NotFound(c, err.Error())
		return
	}

	responses.Success(c, "Task retrieved successfully", TaskToResponse(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	task, err := h.taskService.Update(id, req.ToInput(), userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	responses.Success(c, "Task updated successfully", TaskToResponse(task))
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	task, err := h.taskService.ChangeStatus(id, req.Status, userID)
	if err != nil {
		if errors.Is(err, tasks.ErrInvalidStatus) {
			responses.BadRequest(c, err.Error())
			return
		}
		respondTaskError(c, err)
		return
	}

	responses.Success(c, "Task status updated successfully", TaskToResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid task ID")
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.taskService.Delete(id, userID); err != nil {
		if errors.Is(err, tasks.ErrHasEntries) {
			responses.Conflict(c, err.Error())
			return
		}
		respondTaskError(c, err)
		return
	}

	responses.Success(c, "Task deleted successfully", nil)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var (
		taskList []db.Task
		err      error
	)
	if c.Query("all") == "true" {
		taskList, err = h.taskService.ListAll()
	} else {
		taskList, err = h.taskService.ListByAssignee(userID)
	}
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	taskResponses := TasksToResponse(taskList)
	responses.Success(c, "Tasks retrieved successfully", gin.H{
		"tasks": taskResponses,
		"total": len(taskResponses),
	})
}

// Helpers

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tasks.ErrAccessDenied):
		responses.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		responses.NotFound(c, err.Error())
	default:
		responses.InternalError(c, err.Error())
	}
}
