package timesheet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zolten95/project-man/internal/db"
	"github.com/zolten95/project-man/internal/services/timesheet"
)

// fakeStore is an in-memory EntryStore that counts mutations and can be
// told to fail deletes after a given number of successes.
type fakeStore struct {
	entries []db.TimeEntry
	tasks   []db.Task
	nextID  uint

	inserts int
	deletes int

	failDeleteAfter int // -1: never fail
}

func newFakeStore(entries ...db.TimeEntry) *fakeStore {
	s := &fakeStore{failDeleteAfter: -1, nextID: 100}
	s.entries = append(s.entries, entries...)
	return s
}

func (s *fakeStore) ListEntries(userID string) ([]db.TimeEntry, error) {
	var out []db.TimeEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) ListTasks(assigneeID string) ([]db.Task, error) {
	var out []db.Task
	for _, t := range s.tasks {
		if t.AssigneeID == assigneeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) Insert(entry *db.TimeEntry) error {
	s.inserts++
	s.nextID++
	entry.ID = s.nextID
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeStore) Delete(entry *db.TimeEntry) error {
	if s.failDeleteAfter >= 0 && s.deletes >= s.failDeleteAfter {
		return fmt.Errorf("delete rejected by backend")
	}
	s.deletes++
	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	return nil
}

// cellMinutes re-aggregates the store and returns the (task, day) cell.
func cellMinutes(t *testing.T, s *fakeStore, user string, taskID uint, date string) int {
	t.Helper()
	entries, _ := s.ListEntries(user)
	total := 0
	for i := range entries {
		if entries[i].TaskID == taskID && entries[i].EffectiveDate() == date {
			total += entries[i].Minutes
		}
	}
	return total
}

func TestSetCellNoOpIssuesNoMutations(t *testing.T) {
	store := newFakeStore(
		entryOn(1, 1, "alice", "2024-01-01", 45),
		entryOn(2, 1, "alice", "2024-01-01", 45),
	)
	svc := timesheet.NewTimesheetServiceWithStore(store)

	if err := svc.SetCell("alice", 1, "2024-01-01", 90); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if store.inserts != 0 || store.deletes != 0 {
		t.Errorf("no-op reconcile mutated the store: %d inserts, %d deletes",
			store.inserts, store.deletes)
	}
}

func TestSetCellIncreaseInsertsSingleAdjustment(t *testing.T) {
	store := newFakeStore(entryOn(1, 1, "alice", "2024-01-01", 30))
	svc := timesheet.NewTimesheetServiceWithStore(store)

	if err := svc.SetCell("alice", 1, "2024-01-01", 90); err != nil {
		t.Fatalf("SetCell: %v", err)
	}

	if store.deletes != 0 {
		t.Errorf("net increase must not delete, got %d deletes", store.deletes)
	}
	if store.inserts != 1 {
		t.Fatalf("got %d inserts, want exactly 1", store.inserts)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-01"); got != 90 {
		t.Errorf("cell = %dm after increase, want 90", got)
	}

	added := store.entries[len(store.entries)-1]
	if added.Minutes != 60 {
		t.Errorf("adjustment entry = %dm, want the 60m difference", added.Minutes)
	}
	if added.Description == nil || *added.Description == "" {
		t.Error("adjustment entry must carry a synthetic description")
	}
	if added.EffectiveDate() != "2024-01-01" {
		t.Errorf("adjustment landed on %s, want 2024-01-01", added.EffectiveDate())
	}
}

func TestSetCellDecreaseDeletesAllThenRecreatesOne(t *testing.T) {
	store := newFakeStore(
		entryOn(1, 1, "alice", "2024-01-01", 60),
		entryOn(2, 1, "alice", "2024-01-01", 30),
		entryOn(3, 1, "alice", "2024-01-02", 15), // other day, untouched
		entryOn(4, 2, "alice", "2024-01-01", 45), // other task, untouched
	)
	svc := timesheet.NewTimesheetServiceWithStore(store)

	if err := svc.SetCell("alice", 1, "2024-01-01", 30); err != nil {
		t.Fatalf("SetCell: %v", err)
	}

	if store.deletes != 2 {
		t.Errorf("got %d deletes, want both day entries removed", store.deletes)
	}
	if store.inserts != 1 {
		t.Errorf("got %d inserts, want exactly one replacement", store.inserts)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-01"); got != 30 {
		t.Errorf("edited cell = %dm, want 30", got)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-02"); got != 15 {
		t.Errorf("neighboring day changed: %dm, want 15", got)
	}
	if got := cellMinutes(t, store, "alice", 2, "2024-01-01"); got != 45 {
		t.Errorf("other task changed: %dm, want 45", got)
	}
}

func TestSetCellToZeroLeavesEmptyCell(t *testing.T) {
	store := newFakeStore(
		entryOn(1, 1, "alice", "2024-01-01", 60),
		entryOn(2, 1, "alice", "2024-01-01", 30),
	)
	svc := timesheet.NewTimesheetServiceWithStore(store)

	if err := svc.SetCell("alice", 1, "2024-01-01", 0); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if store.inserts != 0 {
		t.Errorf("target 0 must not recreate an entry, got %d inserts", store.inserts)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-01"); got != 0 {
		t.Errorf("cell = %dm, want 0", got)
	}
}

func TestSetCellSubMinuteTargetFloorsToOne(t *testing.T) {
	store := newFakeStore()
	svc := timesheet.NewTimesheetServiceWithStore(store)

	// 30 seconds on an empty cell becomes a 1-minute entry.
	if err := svc.SetCell("alice", 1, "2024-01-01", 0.5); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-01"); got != 1 {
		t.Errorf("cell = %dm, want 1 (minimum-granularity floor)", got)
	}
}

func TestSetCellRejectsNegativeTarget(t *testing.T) {
	store := newFakeStore()
	svc := timesheet.NewTimesheetServiceWithStore(store)

	err := svc.SetCell("alice", 1, "2024-01-01", -30)
	if !errors.Is(err, timesheet.ErrNegativeDuration) {
		t.Fatalf("got %v, want ErrNegativeDuration", err)
	}
	if store.inserts != 0 || store.deletes != 0 {
		t.Error("validation failure must happen before any store call")
	}
}

func TestSetCellRejectsMalformedDate(t *testing.T) {
	svc := timesheet.NewTimesheetServiceWithStore(newFakeStore())
	if err := svc.SetCell("alice", 1, "01/02/2024", 30); !errors.Is(err, timesheet.ErrInvalidDate) {
		t.Fatalf("got %v, want ErrInvalidDate", err)
	}
}

func TestSetCellAbortsOnMidBatchDeleteFailure(t *testing.T) {
	store := newFakeStore(
		entryOn(1, 1, "alice", "2024-01-01", 30),
		entryOn(2, 1, "alice", "2024-01-01", 30),
		entryOn(3, 1, "alice", "2024-01-01", 30),
	)
	store.failDeleteAfter = 1
	svc := timesheet.NewTimesheetServiceWithStore(store)

	err := svc.SetCell("alice", 1, "2024-01-01", 10)
	if err == nil {
		t.Fatal("expected the delete failure to surface")
	}
	if store.deletes != 1 {
		t.Errorf("got %d deletes, want the batch aborted after the first failure", store.deletes)
	}
	if store.inserts != 0 {
		t.Errorf("no replacement may be inserted after an aborted batch, got %d", store.inserts)
	}
	// Partial state is visible: one of three entries gone.
	if got := cellMinutes(t, store, "alice", 1, "2024-01-01"); got != 60 {
		t.Errorf("cell = %dm after partial failure, want 60", got)
	}
}

func TestDeleteDayRemovesOnlyThatCell(t *testing.T) {
	store := newFakeStore(
		entryOn(1, 1, "alice", "2024-01-01", 30),
		entryOn(2, 1, "alice", "2024-01-01", 15),
		entryOn(3, 1, "alice", "2024-01-02", 45),
		entryOn(4, 2, "alice", "2024-01-01", 20),
	)
	svc := timesheet.NewTimesheetServiceWithStore(store)

	if err := svc.DeleteDay("alice", 1, "2024-01-01"); err != nil {
		t.Fatalf("DeleteDay: %v", err)
	}

	if store.inserts != 0 {
		t.Errorf("DeleteDay must never insert, got %d", store.inserts)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-01"); got != 0 {
		t.Errorf("deleted cell = %dm, want 0", got)
	}
	if got := cellMinutes(t, store, "alice", 1, "2024-01-02"); got != 45 {
		t.Errorf("other day = %dm, want 45", got)
	}
	if got := cellMinutes(t, store, "alice", 2, "2024-01-01"); got != 20 {
		t.Errorf("other task = %dm, want 20", got)
	}
}

func TestLoadReportRejectsInvertedRange(t *testing.T) {
	svc := timesheet.NewTimesheetServiceWithStore(newFakeStore())
	if _, err := svc.LoadReport("alice", "2024-01-07", "2024-01-01"); !errors.Is(err, timesheet.ErrInvalidDate) {
		t.Fatalf("got %v, want ErrInvalidDate", err)
	}
}

func TestLoadReportAggregatesStoreState(t *testing.T) {
	store := newFakeStore(
		entryOn(1, 1, "alice", "2024-01-01", 45),
		entryOn(2, 1, "bob", "2024-01-01", 500), // other user, excluded
	)
	store.tasks = []db.Task{
		{ID: 1, Title: "Task A", AssigneeID: "alice"},
		{ID: 2, Title: "Task B", AssigneeID: "alice"},
		{ID: 3, Title: "Other", AssigneeID: "bob"},
	}
	svc := timesheet.NewTimesheetServiceWithStore(store)

	report, err := svc.LoadReport("alice", "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if report.WeekTotal != 45 {
		t.Errorf("WeekTotal = %d, want 45 (alice only)", report.WeekTotal)
	}
	if len(report.Tasks) != 2 {
		t.Errorf("got %d rows, want alice's 2 assigned tasks", len(report.Tasks))
	}
}
