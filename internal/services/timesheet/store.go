package timesheet

import (
	"fmt"

	"github.com/JorgeSaicoski/pgconnect"
	"github.com/zolten95/project-man/internal/db"
)

// EntryStore is the slice of the persistence layer the timesheet needs:
// the user's entries and tasks for aggregation, insert/delete for
// reconciliation. The production implementation sits on pgconnect
// repositories; tests swap in an in-memory fake.
type EntryStore interface {
	ListEntries(userID string) ([]db.TimeEntry, error)
	ListTasks(assigneeID string) ([]db.Task, error)
	Insert(entry *db.TimeEntry) error
	Delete(entry *db.TimeEntry) error
}

type repositoryStore struct {
	entryRepo *pgconnect.Repository[db.TimeEntry]
	taskRepo  *pgconnect.Repository[db.Task]
}

func newRepositoryStore(database *pgconnect.DB) *repositoryStore {
	return &repositoryStore{
		entryRepo: pgconnect.NewRepository[db.TimeEntry](database),
		taskRepo:  pgconnect.NewRepository[db.Task](database),
	}
}

func (s *repositoryStore) ListEntries(userID string) ([]db.TimeEntry, error) {
	var entries []db.TimeEntry
	if err := s.entryRepo.FindWhere(&entries, "user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("failed to retrieve time entries: %w", err)
	}
	return entries, nil
}

func (s *repositoryStore) ListTasks(assigneeID string) ([]db.Task, error) {
	var tasks []db.Task
	if err := s.taskRepo.FindWhere(&tasks, "assignee_id = ?", assigneeID); err != nil {
		return nil, fmt.Errorf("failed to retrieve assigned tasks: %w", err)
	}
	return tasks, nil
}

func (s *repositoryStore) Insert(entry *db.TimeEntry) error {
	if err := s.entryRepo.Create(entry); err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}
	return nil
}

func (s *repositoryStore) Delete(entry *db.TimeEntry) error {
	if err := s.entryRepo.Delete(entry); err != nil {
		return fmt.Errorf("failed to delete time entry %d: %w", entry.ID, err)
	}
	return nil
}
