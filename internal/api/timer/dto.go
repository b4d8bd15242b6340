package timer

import (
	"time"

	"github.com/zolten95/project-man/internal/db"
)

// Request DTOs

type StartTimerRequest struct {
	TaskID uint `json:"taskId" binding:"required"`
}

// Response DTOs

type ActiveTimerResponse struct {
	TaskID    uint      `json:"taskId"`
	StartedAt time.Time `json:"startedAt"`
}

// ActiveTimerEnvelope lets the client resume or clear its clock display
// from a single poll.
type ActiveTimerEnvelope struct {
	Running bool                 `json:"running"`
	Timer   *ActiveTimerResponse `json:"timer"` // nil when no timer runs
}

type StoppedTimerResponse struct {
	EntryID   uint       `json:"entryId"`
	TaskID    uint       `json:"taskId"`
	Minutes   int        `json:"minutes"`
	StartedAt *time.Time `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
}

// Conversion methods

func ActiveTimerToResponse(timer *db.ActiveTimer) ActiveTimerResponse {
	return ActiveTimerResponse{
		TaskID:    timer.TaskID,
		StartedAt: timer.StartedAt,
	}
}

func StoppedTimerToResponse(entry *db.TimeEntry) StoppedTimerResponse {
	return StoppedTimerResponse{
		EntryID:   entry.ID,
		TaskID:    entry.TaskID,
		Minutes:   entry.Minutes,
		StartedAt: entry.StartedAt,
		EndedAt:   entry.EndedAt,
	}
}
