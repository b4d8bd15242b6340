package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JorgeSaicoski/pgconnect"
	"gorm.io/gorm"

	"github.com/zolten95/project-man/internal/db"
)

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "TimerService"),
)

var (
	ErrTimerRunning = errors.New("a timer is already running - stop it first")
	ErrNoTimer      = errors.New("no timer is running")
)

// EntryWriter persists the time entry produced when a timer stops.
type EntryWriter interface {
	Insert(entry *db.TimeEntry) error
}

// TaskChecker verifies the tracked task exists before a timer starts.
type TaskChecker interface {
	TaskExists(id uint) (bool, error)
}

type TimerService struct {
	store   TimerStore
	entries EntryWriter
	tasks   TaskChecker
	now     func() time.Time
}

func NewTimerService(database *pgconnect.DB, store TimerStore) *TimerService {
	repos := &repositoryDeps{
		entryRepo: pgconnect.NewRepository[db.TimeEntry](database),
		taskRepo:  pgconnect.NewRepository[db.Task](database),
	}
	return &TimerService{
		store:   store,
		entries: repos,
		tasks:   repos,
		now:     time.Now,
	}
}

// NewTimerServiceWithDeps wires explicit collaborators and clock; used by
// tests.
func NewTimerServiceWithDeps(store TimerStore, entries EntryWriter, tasks TaskChecker, clock func() time.Time) *TimerService {
	return &TimerService{store: store, entries: entries, tasks: tasks, now: clock}
}

// Start begins tracking taskID for the user. Only one timer may run per
// user; the stored start timestamp is the single source of truth for the
// eventual duration.
func (s *TimerService) Start(ctx context.Context, userID string, taskID uint) (*db.ActiveTimer, error) {
	running, err := s.store.Get(ctx, userID)
	if err != nil {
		log.Error("start-timer:state-read-failed", "err", err)
		return nil, err
	}
	if running != nil {
		log.Warn("start-timer:already-running", "userID", userID, "taskID", running.TaskID)
		return nil, ErrTimerRunning
	}

	exists, err := s.tasks.TaskExists(taskID)
	if err != nil {
		log.Error("start-timer:task-check-failed", "err", err)
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("task %d not found", taskID)
	}

	timer := &db.ActiveTimer{
		UserID:    userID,
		TaskID:    taskID,
		StartedAt: s.now(),
	}
	if err := s.store.Set(ctx, timer); err != nil {
		log.Error("start-timer:state-write-failed", "err", err)
		return nil, err
	}

	log.Info("start-timer:success", "userID", userID, "taskID", taskID)
	return timer, nil
}

// Active returns the user's running timer, or nil when none is running.
// This is what lets a reloaded client resume its on-screen clock.
func (s *TimerService) Active(ctx context.Context, userID string) (*db.ActiveTimer, error) {
	return s.store.Get(ctx, userID)
}

// Stop ends the running timer and records the tracked time. The duration
// comes from the wall-clock start and stop timestamps, never from any
// display tick, and is floored to a minimum of one minute.
func (s *TimerService) Stop(ctx context.Context, userID string) (*db.TimeEntry, error) {
	running, err := s.store.Get(ctx, userID)
	if err != nil {
		log.Error("stop-timer:state-read-failed", "err", err)
		return nil, err
	}
	if running == nil {
		return nil, ErrNoTimer
	}

	stoppedAt := s.now()
	minutes := int(stoppedAt.Sub(running.StartedAt).Minutes())
	if minutes < 1 {
		minutes = 1
	}

	entry := &db.TimeEntry{
		TaskID:    running.TaskID,
		UserID:    userID,
		Minutes:   minutes,
		StartedAt: &running.StartedAt,
		EndedAt:   &stoppedAt,
		CreatedAt: stoppedAt,
	}
	if err := s.entries.Insert(entry); err != nil {
		log.Error("stop-timer:insert-failed", "err", err)
		return nil, fmt.Errorf("failed to record tracked time: %w", err)
	}

	if err := s.store.Remove(ctx, userID); err != nil {
		// The entry is already persisted; a stale key would double-track
		// on the next stop, so surface the failure.
		log.Error("stop-timer:state-clear-failed", "err", err)
		return nil, err
	}

	log.Info("stop-timer:success", "userID", userID, "taskID", running.TaskID, "minutes", minutes)
	return entry, nil
}

/* ------------------------------------------------------------------ */
/*  pgconnect-backed collaborators                                    */
/* ------------------------------------------------------------------ */

type repositoryDeps struct {
	entryRepo *pgconnect.Repository[db.TimeEntry]
	taskRepo  *pgconnect.Repository[db.Task]
}

func (r *repositoryDeps) Insert(entry *db.TimeEntry) error {
	return r.entryRepo.Create(entry)
}

func (r *repositoryDeps) TaskExists(id uint) (bool, error) {
	var task db.Task
	if err := r.taskRepo.FindByID(id, &task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
