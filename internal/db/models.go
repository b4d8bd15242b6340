package db

import (
	"time"
)

// Task is a unit of work on the team board. Every task belongs to the
// single fixed workspace; assignee and creator are Keycloak user IDs.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description"`                  // Optional rich-text body (stored as sanitized HTML)
	Status      string     `json:"status" gorm:"default:'todo'"` // todo, in_progress, in_review, complete
	AssigneeID  string     `json:"assigneeId" gorm:"index"`      // Current assignee
	CreatorID   string     `json:"creatorId" gorm:"not null"`    // User who created the task
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Comments    []Comment   `json:"comments" gorm:"foreignKey:TaskID"`
	TimeEntries []TimeEntry `json:"timeEntries" gorm:"foreignKey:TaskID"`
}

// TimeEntry is a single tracked chunk of time against a task. Entries are
// created by manual submission, timer stop, or timesheet reconciliation and
// are never updated in place: a duration change is a delete plus insert.
type TimeEntry struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TaskID      uint       `json:"taskId" gorm:"not null;index"`
	UserID      string     `json:"userId" gorm:"not null;index"` // Owner of the tracked time
	Minutes     int        `json:"minutes" gorm:"not null"`      // Always >= 1, enforced by the writer
	Description *string    `json:"description"`
	StartedAt   *time.Time `json:"startedAt"` // nil for manual entries without a clock time
	EndedAt     *time.Time `json:"endedAt"`
	CreatedAt   time.Time  `json:"createdAt"`

	// Relations
	Task Task `json:"task" gorm:"foreignKey:TaskID"`
}

// EffectiveDate returns the calendar date the entry is attributed to:
// the date of StartedAt when set, else the date of CreatedAt.
func (e *TimeEntry) EffectiveDate() string {
	if e.StartedAt != nil {
		return e.StartedAt.Format("2006-01-02")
	}
	return e.CreatedAt.Format("2006-01-02")
}

// Comment is a discussion message attached to a task.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TaskID    uint      `json:"taskId" gorm:"not null;index"`
	AuthorID  string    `json:"authorId" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Task Task `json:"task" gorm:"foreignKey:TaskID"`
}

// TeamMember is one row per user in the fixed workspace. Identity and
// credentials live in Keycloak; this is just the visible profile.
type TeamMember struct {
	UserID      string    `json:"userId" gorm:"primaryKey"`
	DisplayName string    `json:"displayName" gorm:"not null"`
	AvatarURL   *string   `json:"avatarUrl"`                    // External URL, uploads are out of scope
	Role        string    `json:"role" gorm:"default:'member'"` // member, admin
	JoinedAt    time.Time `json:"joinedAt"`
}

// TimesheetTaskRow is one task's line in an aggregated timesheet. Built
// fresh on every aggregation, never persisted.
type TimesheetTaskRow struct {
	TaskID       uint           `json:"taskId"`
	TaskTitle    string         `json:"taskTitle"`
	TaskStatus   string         `json:"taskStatus"`
	AssigneeID   string         `json:"assigneeId"`
	DailyTime    map[string]int `json:"dailyTime"` // "YYYY-MM-DD" -> minutes
	TotalMinutes int            `json:"totalMinutes"`
}

// TimesheetReport is the per-task, per-day, per-range minute breakdown for
// one user. DailyTotals always reconciles to the sum of all in-range
// entries, including entries whose task is no longer assigned to the user.
type TimesheetReport struct {
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Tasks       []TimesheetTaskRow `json:"tasks"`
	DailyTotals map[string]int     `json:"dailyTotals"`
	WeekTotal   int                `json:"weekTotal"`
}

// ActiveTimer is the resumable live-timer state for one user. It lives in
// the timer key-value store, not in postgres.
type ActiveTimer struct {
	UserID    string    `json:"userId"`
	TaskID    uint      `json:"taskId"`
	StartedAt time.Time `json:"startedAt"`
}

// Task status constants
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusInReview   = "in_review"
	StatusComplete   = "complete"
)

// ValidStatus reports whether s is one of the board columns.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInReview, StatusComplete:
		return true
	}
	return false
}

// Team role constants
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)
