package comments

import (
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/JorgeSaicoski/pgconnect"

	"github.com/zolten95/project-man/internal/authz"
	"github.com/zolten95/project-man/internal/db"
)

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "CommentService"),
)

var (
	ErrAccessDenied = errors.New("access denied: only the author may modify a comment")
	ErrEmptyBody    = errors.New("comment body cannot be empty")
)

type CommentService struct {
	commentRepo *pgconnect.Repository[db.Comment]
	taskRepo    *pgconnect.Repository[db.Task]
}

func NewCommentService(database *pgconnect.DB) *CommentService {
	return &CommentService{
		commentRepo: pgconnect.NewRepository[db.Comment](database),
		taskRepo:    pgconnect.NewRepository[db.Task](database),
	}
}

func (s *CommentService) Create(taskID uint, body, userID string) (*db.Comment, error) {
	log.Info("create-comment:start", "taskID", taskID, "userID", userID)

	if body == "" {
		return nil, ErrEmptyBody
	}

	var task db.Task
	if err := s.taskRepo.FindByID(taskID, &task); err != nil {
		log.Error("create-comment:task-not-found", "err", err)
		return nil, fmt.Errorf("task not found: %w", err)
	}

	now := time.Now()
	comment := &db.Comment{
		TaskID:    taskID,
		AuthorID:  userID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		log.Error("create-comment:db-insert-failed", "err", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	log.Info("create-comment:success", "commentID", comment.ID)
	return comment, nil
}

func (s *CommentService) ListByTask(taskID uint) ([]db.Comment, error) {
	log.Debug("list-comments", "taskID", taskID)

	var comments []db.Comment
	if err := s.commentRepo.FindWhere(&comments, "task_id = ?", taskID); err != nil {
		log.Error("list-comments:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve comments: %w", err)
	}
	return comments, nil
}

func (s *CommentService) Update(id uint, body, userID string) (*db.Comment, error) {
	log.Info("update-comment:start", "commentID", id, "userID", userID)

	if body == "" {
		return nil, ErrEmptyBody
	}

	var comment db.Comment
	if err := s.commentRepo.FindByID(id, &comment); err != nil {
		log.Error("update-comment:not-found", "err", err)
		return nil, fmt.Errorf("comment not found: %w", err)
	}

	if !authz.CanMutateComment(&comment, userID) {
		log.Warn("update-comment:access-denied", "commentID", id, "userID", userID)
		return nil, ErrAccessDenied
	}

	comment.Body = body
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(&comment); err != nil {
		log.Error("update-comment:db-update-failed", "err", err)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &comment, nil
}

func (s *CommentService) Delete(id uint, userID string) error {
	log.Info("delete-comment:start", "commentID", id, "userID", userID)

	var comment db.Comment
	if err := s.commentRepo.FindByID(id, &comment); err != nil {
		log.Error("delete-comment:not-found", "err", err)
		return fmt.Errorf("comment not found: %w", err)
	}

	if !authz.CanMutateComment(&comment, userID) {
		log.Warn("delete-comment:access-denied", "commentID", id, "userID", userID)
		return ErrAccessDenied
	}

	if err := s.commentRepo.Delete(&comment); err != nil {
		log.Error("delete-comment:db-delete-failed", "err", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
