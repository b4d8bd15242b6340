package entries

import (
	"time"

	"github.com/zolten95/project-man/internal/db"
	svc "github.com/zolten95/project-man/internal/services/entries"
)

// Request DTOs

type CreateTimeEntryRequest struct {
	TaskID      uint       `json:"taskId" binding:"required"`
	Minutes     int        `json:"minutes" binding:"required"`
	Description *string    `json:"description"`
	StartedAt   *time.Time `json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt"`
}

// Response DTOs

type TimeEntryResponse struct {
	ID            uint       `json:"id"`
	TaskID        uint       `json:"taskId"`
	UserID        string     `json:"userId"`
	Minutes       int        `json:"minutes"`
	Description   *string    `json:"description"`
	StartedAt     *time.Time `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt"`
	EffectiveDate string     `json:"effectiveDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Conversion methods

func (r *CreateTimeEntryRequest) ToInput() *svc.CreateTimeEntryInput {
	return &svc.CreateTimeEntryInput{
		TaskID:      r.TaskID,
		Minutes:     r.Minutes,
		Description: r.Description,
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
	}
}

func TimeEntryToResponse(entry *db.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:            entry.ID,
		TaskID:        entry.TaskID,
		UserID:        entry.UserID,
		Minutes:       entry.Minutes,
		Description:   entry.Description,
		StartedAt:     entry.StartedAt,
		EndedAt:       entry.EndedAt,
		EffectiveDate: entry.EffectiveDate(),
		CreatedAt:     entry.CreatedAt,
	}
}

func TimeEntriesToResponse(entries []db.TimeEntry) []TimeEntryResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = TimeEntryToResponse(&entry)
	}
	return responses
}
