package timesheet

import (
	"github.com/zolten95/project-man/internal/db"
	"github.com/zolten95/project-man/internal/timeutil"
)

// Request DTOs

type SetCellRequest struct {
	TaskID   uint   `json:"taskId" binding:"required"`
	Date     string `json:"date" binding:"required"`     // YYYY-MM-DD
	Duration string `json:"duration" binding:"required"` // "H:MM" or bare minutes
}

// Response DTOs

type TaskRowResponse struct {
	TaskID       uint           `json:"taskId"`
	TaskTitle    string         `json:"taskTitle"`
	TaskStatus   string         `json:"taskStatus"`
	DailyTime    map[string]int `json:"dailyTime"`
	TotalMinutes int            `json:"totalMinutes"`
	TotalClock   string         `json:"totalClock"` // "H:MM" for the grid footer
}

type ReportResponse struct {
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Tasks       []TaskRowResponse `json:"tasks"`
	DailyTotals map[string]int    `json:"dailyTotals"`
	WeekTotal   int               `json:"weekTotal"`
	WeekClock   string            `json:"weekClock"`
}

// Conversion methods

func ReportToResponse(report *db.TimesheetReport) ReportResponse {
	response := ReportResponse{
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		Tasks:       make([]TaskRowResponse, len(report.Tasks)),
		DailyTotals: report.DailyTotals,
		WeekTotal:   report.WeekTotal,
		WeekClock:   timeutil.FormatClock(report.WeekTotal),
	}
	for i, row := range report.Tasks {
		response.Tasks[i] = TaskRowResponse{
			TaskID:       row.TaskID,
			TaskTitle:    row.TaskTitle,
			TaskStatus:   row.TaskStatus,
			DailyTime:    row.DailyTime,
			TotalMinutes: row.TotalMinutes,
			TotalClock:   timeutil.FormatClock(row.TotalMinutes),
		}
	}
	return response
}
