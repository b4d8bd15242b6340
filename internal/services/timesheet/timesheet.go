package timesheet

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/JorgeSaicoski/pgconnect"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zolten95/project-man/internal/db"
	"github.com/zolten95/project-man/internal/timeutil"
)

/* ------------------------------------------------------------------ */
/*  Logger                                                            */
/* ------------------------------------------------------------------ */

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "TimesheetService"),
)

/* ------------------------------------------------------------------ */
/*  Service definition & constructor                                  */
/* ------------------------------------------------------------------ */

type TimesheetService struct {
	store EntryStore
}

func NewTimesheetService(database *pgconnect.DB) *TimesheetService {
	return &TimesheetService{store: newRepositoryStore(database)}
}

// NewTimesheetServiceWithStore wires an alternative store, used by other
// services that already own repositories and by tests.
func NewTimesheetServiceWithStore(store EntryStore) *TimesheetService {
	return &TimesheetService{store: store}
}

/* ------------------------------------------------------------------ */
/*  Aggregation                                                       */
/* ------------------------------------------------------------------ */

// BuildReport turns a snapshot of one user's time entries and assigned
// tasks into the per-task, per-day grid for [startDate, endDate],
// inclusive on both ends.
//
// Every assigned task gets a row even with zero tracked time. Entries
// whose task is no longer in the assigned set (reassigned or deleted
// after tracking) still count toward the day and range totals so the
// column sums always reconcile, but they are not attributed to any row.
func BuildReport(entries []db.TimeEntry, tasks []db.Task, startDate, endDate string) *db.TimesheetReport {
	report := &db.TimesheetReport{
		StartDate:   startDate,
		EndDate:     endDate,
		Tasks:       make([]db.TimesheetTaskRow, 0, len(tasks)),
		DailyTotals: make(map[string]int),
	}

	rowIndex := make(map[uint]int, len(tasks))
	for _, task := range tasks {
		rowIndex[task.ID] = len(report.Tasks)
		report.Tasks = append(report.Tasks, db.TimesheetTaskRow{
			TaskID:     task.ID,
			TaskTitle:  task.Title,
			TaskStatus: task.Status,
			AssigneeID: task.AssigneeID,
			DailyTime:  make(map[string]int),
		})
	}

	for i := range entries {
		entry := &entries[i]
		date := entry.EffectiveDate()
		if !timeutil.InRange(date, startDate, endDate) {
			continue
		}

		report.DailyTotals[date] += entry.Minutes
		report.WeekTotal += entry.Minutes

		if idx, ok := rowIndex[entry.TaskID]; ok {
			row := &report.Tasks[idx]
			row.DailyTime[date] += entry.Minutes
			row.TotalMinutes += entry.Minutes
		}
	}

	coll := collate.New(language.English)
	sort.SliceStable(report.Tasks, func(i, j int) bool {
		a, b := &report.Tasks[i], &report.Tasks[j]
		if a.TotalMinutes != b.TotalMinutes {
			return a.TotalMinutes > b.TotalMinutes
		}
		return coll.CompareString(a.TaskTitle, b.TaskTitle) < 0
	})

	return report
}

// LoadReport fetches the user's full entry and task sets and aggregates
// them over the requested range. Date filtering happens in BuildReport,
// not in the queries, so the orphan-entry rule above holds.
func (s *TimesheetService) LoadReport(userID, startDate, endDate string) (*db.TimesheetReport, error) {
	log.Debug("load-report", "userID", userID, "start", startDate, "end", endDate)

	if !timeutil.ValidDate(startDate) || !timeutil.ValidDate(endDate) {
		return nil, fmt.Errorf("%w: range %q..%q", ErrInvalidDate, startDate, endDate)
	}
	if endDate < startDate {
		return nil, fmt.Errorf("%w: end %q before start %q", ErrInvalidDate, endDate, startDate)
	}

	entries, err := s.store.ListEntries(userID)
	if err != nil {
		log.Error("load-report:entries-failed", "err", err)
		return nil, err
	}
	tasks, err := s.store.ListTasks(userID)
	if err != nil {
		log.Error("load-report:tasks-failed", "err", err)
		return nil, err
	}

	report := BuildReport(entries, tasks, startDate, endDate)
	log.Info("load-report:success", "userID", userID,
		"tasks", len(report.Tasks), "weekTotal", report.WeekTotal)
	return report, nil
}
