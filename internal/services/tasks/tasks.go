package tasks

import (
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/JorgeSaicoski/pgconnect"

	"github.com/zolten95/project-man/internal/authz"
	"github.com/zolten95/project-man/internal/db"
)

/* ------------------------------------------------------------------ */
/*  Logger                                                            */
/* ------------------------------------------------------------------ */

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "TaskService"),
)

var (
	ErrAccessDenied  = errors.New("access denied: only the assignee or creator may modify a task")
	ErrInvalidStatus = errors.New("invalid status - use: todo, in_progress, in_review, or complete")
	ErrHasEntries    = errors.New("cannot delete task with tracked time entries")
)

/* ------------------------------------------------------------------ */
/*  Service definition & constructor                                  */
/* ------------------------------------------------------------------ */

type TaskService struct {
	taskRepo    *pgconnect.Repository[db.Task]
	entryRepo   *pgconnect.Repository[db.TimeEntry]
	commentRepo *pgconnect.Repository[db.Comment]
}

func NewTaskService(database *pgconnect.DB) *TaskService {
	return &TaskService{
		taskRepo:    pgconnect.NewRepository[db.Task](database),
		entryRepo:   pgconnect.NewRepository[db.TimeEntry](database),
		commentRepo: pgconnect.NewRepository[db.Comment](database),
	}
}

/* ------------------------------------------------------------------ */
/*  DTOs                                                              */
/* ------------------------------------------------------------------ */

type CreateTaskInput struct {
	Title       string
	Description *string
	AssigneeID  string
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssigneeID  *string
	DueDate     *time.Time
}

/* ------------------------------------------------------------------ */
/*  CRUD                                                              */
/* ------------------------------------------------------------------ */

func (s *TaskService) Create(in *CreateTaskInput, userID string) (*db.Task, error) {
	log.Info("create-task:start", "userID", userID, "title", in.Title)

	assignee := in.AssigneeID
	if assignee == "" {
		assignee = userID
	}

	now := time.Now()
	task := &db.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      db.StatusTodo,
		AssigneeID:  assignee,
		CreatorID:   userID,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(task); err != nil {
		log.Error("create-task:db-insert-failed", "err", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("create-task:success", "taskID", task.ID)
	return task, nil
}

func (s *TaskService) Get(id uint) (*db.Task, error) {
	log.Debug("get-task", "taskID", id)

	var task db.Task
	if err := s.taskRepo.FindByID(id, &task); err != nil {
		log.Error("get-task:not-found", "err", err)
		return nil, fmt.Errorf("task not found: %w", err)
	}

	if err := s.commentRepo.FindWhere(&task.Comments, "task_id = ?", id); err != nil {
		log.Error("get-task:comments-load-failed", "err", err)
		return nil, fmt.Errorf("failed to load task comments: %w", err)
	}
	return &task, nil
}

func (s *TaskService) Update(id uint, in *UpdateTaskInput, userID string) (*db.Task, error) {
	log.Info("update-task:start", "taskID", id, "userID", userID)

	var task db.Task
	if err := s.taskRepo.FindByID(id, &task); err != nil {
		log.Error("update-task:not-found", "err", err)
		return nil, fmt.Errorf("task not found: %w", err)
	}

	if !authz.CanMutateTask(&task, userID) {
		log.Warn("update-task:access-denied", "taskID", id, "userID", userID)
		return nil, ErrAccessDenied
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.AssigneeID != nil {
		task.AssigneeID = *in.AssigneeID
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(&task); err != nil {
		log.Error("update-task:db-update-failed", "err", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	log.Info("update-task:success", "taskID", id)
	return &task, nil
}

// ChangeStatus moves a task between board columns. This is the backend of
// the board drag; the interaction itself lives in the client.
func (s *TaskService) ChangeStatus(id uint, status, userID string) (*db.Task, error) {
	log.Info("change-status:start", "taskID", id, "status", status, "userID", userID)

	if !db.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var task db.Task
	if err := s.taskRepo.FindByID(id, &task); err != nil {
		log.Error("change-status:not-found", "err", err)
		return nil, fmt.Errorf("task not found: %w", err)
	}

	if !authz.CanMutateTask(&task, userID) {
		log.Warn("change-status:access-denied", "taskID", id, "userID", userID)
		return nil, ErrAccessDenied
	}

	task.Status = status
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(&task); err != nil {
		log.Error("change-status:db-update-failed", "err", err)
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	log.Info("change-status:success", "taskID", id, "status", status)
	return &task, nil
}

func (s *TaskService) Delete(id uint, userID string) error {
	log.Info("delete-task:start", "taskID", id, "userID", userID)

	var task db.Task
	if err := s.taskRepo.FindByID(id, &task); err != nil {
		log.Error("delete-task:not-found", "err", err)
		return fmt.Errorf("task not found: %w", err)
	}

	if !authz.CanMutateTask(&task, userID) {
		log.Warn("delete-task:access-denied", "taskID", id, "userID", userID)
		return ErrAccessDenied
	}

	var entries []db.TimeEntry
	if err := s.entryRepo.FindWhere(&entries, "task_id = ?", id); err != nil {
		log.Error("delete-task:entry-check-failed", "err", err)
		return fmt.Errorf("failed to check time entries: %w", err)
	}
	if len(entries) > 0 {
		log.Warn("delete-task:has-entries", "count", len(entries))
		return ErrHasEntries
	}

	if err := s.taskRepo.Delete(&task); err != nil {
		log.Error("delete-task:db-delete-failed", "err", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	log.Info("delete-task:success", "taskID", id)
	return nil
}

/* ------------------------------------------------------------------ */
/*  Queries                                                           */
/* ------------------------------------------------------------------ */

// ListByAssignee returns the board tasks currently assigned to one user.
func (s *TaskService) ListByAssignee(assigneeID string) ([]db.Task, error) {
	log.Debug("list-tasks", "assigneeID", assigneeID)

	var tasks []db.Task
	if err := s.taskRepo.FindWhere(&tasks, "assignee_id = ?", assigneeID); err != nil {
		log.Error("list-tasks:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	log.Info("list-tasks:success", "count", len(tasks))
	return tasks, nil
}

// ListAll returns every task in the workspace, for the shared board view.
func (s *TaskService) ListAll() ([]db.Task, error) {
	var tasks []db.Task
	if err := s.taskRepo.FindAll(&tasks); err != nil {
		log.Error("list-all-tasks:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	return tasks, nil
}
