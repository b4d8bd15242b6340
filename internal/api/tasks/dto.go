package tasks

import (
	"time"

	"github.com/zolten95/project-man/internal/db"
	svc "github.com/zolten95/project-man/internal/services/tasks"
)

// Request DTOs

// matches the JSON sent by the front-end
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	AssigneeID  string     `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"` // todo, in_progress, in_review, complete
}

// Response DTOs

type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      string            `json:"status"`
	AssigneeID  string            `json:"assigneeId"`
	CreatorID   string            `json:"creatorId"`
	DueDate     *time.Time        `json:"dueDate"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Comments    []CommentResponse `json:"comments,omitempty"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	TaskID    uint      `json:"taskId"`
	AuthorID  string    `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Conversion methods

func (r *CreateTaskRequest) ToInput() *svc.CreateTaskInput {
	return &svc.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		DueDate:     r.DueDate,
	}
}

func (r *UpdateTaskRequest) ToInput() *svc.UpdateTaskInput {
	return &svc.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		DueDate:     r.DueDate,
	}
}

func TaskToResponse(task *db.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		AssigneeID:  task.AssigneeID,
		CreatorID:   task.CreatorID,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if len(task.Comments) > 0 {
		response.Comments = make([]CommentResponse, len(task.Comments))
		for i, comment := range task.Comments {
			response.Comments[i] = CommentToResponse(&comment)
		}
	}

	return response
}

func TasksToResponse(tasks []db.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = TaskToResponse(&task)
	}
	return responses
}

func CommentToResponse(comment *db.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
