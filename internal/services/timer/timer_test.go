package timer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zolten95/project-man/internal/db"
	"github.com/zolten95/project-man/internal/services/timer"
)

type fakeEntryWriter struct {
	inserted []db.TimeEntry
}

func (w *fakeEntryWriter) Insert(entry *db.TimeEntry) error {
	w.inserted = append(w.inserted, *entry)
	return nil
}

type fakeTaskChecker struct {
	existing map[uint]bool
}

func (c *fakeTaskChecker) TaskExists(id uint) (bool, error) {
	return c.existing[id], nil
}

func newTestService(start time.Time) (*timer.TimerService, *fakeEntryWriter, *time.Time) {
	clock := start
	writer := &fakeEntryWriter{}
	checker := &fakeTaskChecker{existing: map[uint]bool{1: true}}
	svc := timer.NewTimerServiceWithDeps(
		timer.NewMemoryTimerStore(),
		writer,
		checker,
		func() time.Time { return clock },
	)
	return svc, writer, &clock
}

func TestStartStoresResumableState(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(start)

	started, err := svc.Start(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if started.TaskID != 1 || !started.StartedAt.Equal(start) {
		t.Errorf("stored timer = %+v, want task 1 at %v", started, start)
	}

	// A reload reads the same state back.
	active, err := svc.Active(ctx, "alice")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active == nil || active.TaskID != 1 || !active.StartedAt.Equal(start) {
		t.Errorf("Active = %+v, want the started timer", active)
	}
}

func TestStartConflictsWithRunningTimer(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Now())

	if _, err := svc.Start(ctx, "alice", 1); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if _, err := svc.Start(ctx, "alice", 1); !errors.Is(err, timer.ErrTimerRunning) {
		t.Fatalf("second Start = %v, want ErrTimerRunning", err)
	}
}

func TestStartRejectsUnknownTask(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(time.Now())

	if _, err := svc.Start(ctx, "alice", 42); err == nil {
		t.Fatal("expected an error for a missing task")
	}
}

func TestStopRecordsWallClockDuration(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	svc, writer, clock := newTestService(start)

	if _, err := svc.Start(ctx, "alice", 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	*clock = start.Add(95 * time.Minute)
	entry, err := svc.Stop(ctx, "alice")
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if entry.Minutes != 95 {
		t.Errorf("Minutes = %d, want 95 from wall-clock timestamps", entry.Minutes)
	}
	if entry.StartedAt == nil || !entry.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, want %v", entry.StartedAt, start)
	}
	if entry.EndedAt == nil || !entry.EndedAt.Equal(*clock) {
		t.Errorf("EndedAt = %v, want %v", entry.EndedAt, *clock)
	}
	if len(writer.inserted) != 1 {
		t.Errorf("got %d inserted entries, want 1", len(writer.inserted))
	}

	// Store is cleared: nothing to resume, nothing to stop.
	if active, _ := svc.Active(ctx, "alice"); active != nil {
		t.Errorf("Active after Stop = %+v, want nil", active)
	}
	if _, err := svc.Stop(ctx, "alice"); !errors.Is(err, timer.ErrNoTimer) {
		t.Errorf("second Stop = %v, want ErrNoTimer", err)
	}
}

func TestStopFloorsShortTimersToOneMinute(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	svc, _, clock := newTestService(start)

	if _, err := svc.Start(ctx, "alice", 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	*clock = start.Add(20 * time.Second)
	entry, err := svc.Stop(ctx, "alice")
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if entry.Minutes != 1 {
		t.Errorf("Minutes = %d, want the 1-minute floor", entry.Minutes)
	}
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := timer.NewMemoryTimerStore()

	if err := store.Set(ctx, &db.ActiveTimer{UserID: "alice", TaskID: 1, StartedAt: time.Now()}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got, _ := store.Get(ctx, "bob"); got != nil {
		t.Errorf("Get(bob) = %+v, want nil", got)
	}
	if got, _ := store.Get(ctx, "alice"); got == nil || got.TaskID != 1 {
		t.Errorf("Get(alice) = %+v, want task 1", got)
	}

	if err := store.Remove(ctx, "alice"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got, _ := store.Get(ctx, "alice"); got != nil {
		t.Errorf("Get after Remove = %+v, want nil", got)
	}
}
