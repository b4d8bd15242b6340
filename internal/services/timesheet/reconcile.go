package timesheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/zolten95/project-man/internal/db"
	"github.com/zolten95/project-man/internal/timeutil"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrNegativeDuration = errors.New("duration cannot be negative")
)

const adjustmentNote = "Timesheet adjustment"

// SetCell makes the persisted entries for one (task, day) cell add up to
// targetMinutes.
//
// A net increase inserts a single synthetic adjustment entry for the
// difference and deletes nothing. A net decrease deletes every entry on
// that task/day and, when the target is positive, recreates one entry for
// the full target, so the original per-entry descriptions and timestamps
// for the day are replaced. A positive target below one minute is floored
// up to 1; a target of exactly 0 leaves the cell empty.
//
// Deletes are issued as independent remote operations. On the first
// failed delete the remaining ones are skipped, the partial state is
// logged, and the error is surfaced; the caller re-aggregates from
// whatever state was actually reached.
func (s *TimesheetService) SetCell(userID string, taskID uint, date string, targetMinutes float64) error {
	if !timeutil.ValidDate(date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if targetMinutes < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDuration, targetMinutes)
	}

	dayEntries, current, err := s.dayEntries(userID, taskID, date)
	if err != nil {
		return err
	}

	difference := targetMinutes - float64(current)
	log.Info("set-cell:start", "userID", userID, "taskID", taskID, "date", date,
		"current", current, "target", targetMinutes)

	if difference == 0 {
		log.Debug("set-cell:no-op", "taskID", taskID, "date", date)
		return nil
	}

	if difference > 0 {
		entry := s.syntheticEntry(userID, taskID, date, flooredMinutes(difference))
		if err := s.store.Insert(entry); err != nil {
			log.Error("set-cell:insert-failed", "err", err)
			return err
		}
		log.Info("set-cell:increased", "taskID", taskID, "date", date, "added", entry.Minutes)
		return nil
	}

	deleted, err := s.deleteAll(dayEntries)
	if err != nil {
		log.Error("set-cell:partial-delete", "taskID", taskID, "date", date,
			"deleted", deleted, "remaining", len(dayEntries)-deleted, "err", err)
		return err
	}

	if targetMinutes > 0 {
		entry := s.syntheticEntry(userID, taskID, date, flooredMinutes(targetMinutes))
		if err := s.store.Insert(entry); err != nil {
			log.Error("set-cell:recreate-failed", "taskID", taskID, "date", date, "err", err)
			return err
		}
	}

	log.Info("set-cell:success", "taskID", taskID, "date", date, "minutes", targetMinutes)
	return nil
}

// DeleteDay removes every entry for the (task, day) cell without
// recreating anything.
func (s *TimesheetService) DeleteDay(userID string, taskID uint, date string) error {
	if !timeutil.ValidDate(date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	dayEntries, _, err := s.dayEntries(userID, taskID, date)
	if err != nil {
		return err
	}

	deleted, err := s.deleteAll(dayEntries)
	if err != nil {
		log.Error("delete-day:partial-delete", "taskID", taskID, "date", date,
			"deleted", deleted, "remaining", len(dayEntries)-deleted, "err", err)
		return err
	}

	log.Info("delete-day:success", "taskID", taskID, "date", date, "deleted", deleted)
	return nil
}

/* ------------------------------------------------------------------ */
/*  Helpers                                                           */
/* ------------------------------------------------------------------ */

// dayEntries loads the user's entries attributed to (taskID, date) and
// their minute sum. Reading fresh instead of trusting the last rendered
// report keeps retries of a failed reconciliation safe.
func (s *TimesheetService) dayEntries(userID string, taskID uint, date string) ([]db.TimeEntry, int, error) {
	entries, err := s.store.ListEntries(userID)
	if err != nil {
		log.Error("day-entries:query-failed", "err", err)
		return nil, 0, err
	}

	var matched []db.TimeEntry
	total := 0
	for i := range entries {
		if entries[i].TaskID != taskID || entries[i].EffectiveDate() != date {
			continue
		}
		matched = append(matched, entries[i])
		total += entries[i].Minutes
	}
	return matched, total, nil
}

func (s *TimesheetService) deleteAll(entries []db.TimeEntry) (int, error) {
	for i := range entries {
		if err := s.store.Delete(&entries[i]); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

// syntheticEntry builds the replacement entry for a reconciled cell. Its
// StartedAt is pinned to noon UTC of the edited day so the entry keeps
// landing on that day regardless of when the edit happens.
func (s *TimesheetService) syntheticEntry(userID string, taskID uint, date string, minutes int) *db.TimeEntry {
	day, _ := time.Parse("2006-01-02", date)
	startedAt := day.Add(12 * time.Hour).UTC()
	note := adjustmentNote
	return &db.TimeEntry{
		TaskID:      taskID,
		UserID:      userID,
		Minutes:     minutes,
		Description: &note,
		StartedAt:   &startedAt,
		CreatedAt:   time.Now(),
	}
}

// flooredMinutes applies the writer's minimum-granularity rule: any
// positive duration below one minute becomes a 1-minute entry.
func flooredMinutes(minutes float64) int {
	m := int(minutes)
	if m < 1 {
		m = 1
	}
	return m
}
