// Package authz holds the workspace's row-level authorization predicates.
// Every mutation consults one of these instead of re-implementing the
// assignee/creator comparison at each call site.
package authz

import (
	"github.com/zolten95/project-man/internal/db"
)

// CanMutateTask reports whether userID may update or delete the task.
// Only the current assignee and the creator may.
func CanMutateTask(task *db.Task, userID string) bool {
	if userID == "" {
		return false
	}
	return task.AssigneeID == userID || task.CreatorID == userID
}

// CanMutateTimeEntry reports whether userID may delete or replace the
// entry. Time records are private to the user who tracked them.
func CanMutateTimeEntry(entry *db.TimeEntry, userID string) bool {
	return userID != "" && entry.UserID == userID
}

// CanMutateComment reports whether userID may edit or delete the comment.
func CanMutateComment(comment *db.Comment, userID string) bool {
	return userID != "" && comment.AuthorID == userID
}
