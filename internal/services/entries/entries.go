package entries

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
	slog.String("service", "TimeEntryService"),
)

var (
	ErrInvalidMinutes = errors.New("minutes must be at least 1")
	ErrAccessDenied   = errors.New("access denied: time entries are private to their owner")
)

type TimeEntryService struct {
	entryRepo *pgconnect.Repository[db.TimeEntry]
	taskRepo  *pgconnect.Repository[db.Task]
}

func NewTimeEntryService(database *pgconnect.DB) *TimeEntryService {
	return &TimeEntryService{
		entryRepo: pgconnect.NewRepository[db.TimeEntry](database),
		taskRepo:  pgconnect.NewRepository[db.Task](database),
	}
}

type CreateTimeEntryInput struct {
	TaskID      uint
	Minutes     int
	Description *string
	StartedAt   *time.Time
	EndedAt     *time.Time
}

// Create records a manual time entry for the calling user. The minimum
// granularity of one minute is enforced here, not by the schema.
func (s *TimeEntryService) Create(in *CreateTimeEntryInput, userID string) (*db.TimeEntry, error) {
	log.Info("create-entry:start", "userID", userID, "taskID", in.TaskID, "minutes", in.Minutes)

	if in.Minutes < 1 {
		log.Warn("create-entry:invalid-minutes", "minutes", in.Minutes)
		return nil, ErrInvalidMinutes
	}

	var task db.Task
	if err := s.taskRepo.FindByID(in.TaskID, &task); err != nil {
		log.Error("create-entry:task-not-found", "err", err)
		return nil, fmt.Errorf("task not found: %w", err)
	}

	entry := &db.TimeEntry{
		TaskID:      in.TaskID,
		UserID:      userID,
		Minutes:     in.Minutes,
		Description: in.Description,
		StartedAt:   in.StartedAt,
		EndedAt:     in.EndedAt,
		CreatedAt:   time.Now(),
	}
	if err := s.entryRepo.Create(entry); err != nil {
		log.Error("create-entry:db-insert-failed", "err", err)
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	log.Info("create-entry:success", "entryID", entry.ID)
	return entry, nil
}

// List returns the calling user's entries, optionally bounded by the
// effective-date range [startDate, endDate].
func (s *TimeEntryService) List(userID string, startDate, endDate string) ([]db.TimeEntry, error) {
	log.Debug("list-entries", "userID", userID, "start", startDate, "end", endDate)

	var entries []db.TimeEntry
	if err := s.entryRepo.FindWhere(&entries, "user_id = ?", userID); err != nil {
		log.Error("list-entries:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve time entries: %w", err)
	}

	if startDate == "" && endDate == "" {
		return entries, nil
	}

	filtered := make([]db.TimeEntry, 0, len(entries))
	for i := range entries {
		date := entries[i].EffectiveDate()
		if startDate != "" && date < startDate {
			continue
		}
		if endDate != "" && date > endDate {
			continue
		}
		filtered = append(filtered, entries[i])
	}
	return filtered, nil
}

// Delete removes one entry. Only the owner may delete it.
func (s *TimeEntryService) Delete(id uint, userID string) error {
	log.Info("delete-entry:start", "entryID", id, "userID", userID)

	var entry db.TimeEntry
	if err := s.entryRepo.FindByID(id, &entry); err != nil {
		log.Error("delete-entry:not-found", "err", err)
		return fmt.Errorf("time entry not found: %w", err)
	}

	if !authz.CanMutateTimeEntry(&entry, userID) {
		log.Warn("delete-entry:access-denied", "entryID", id, "userID", userID)
		return ErrAccessDenied
	}

	if err := s.entryRepo.Delete(&entry); err != nil {
		log.Error("delete-entry:db-delete-failed", "err", err)
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	log.Info("delete-entry:success", "entryID", id)
	return nil
}
