package models

import (
	"time"

	"taskboard-backend/internal/common/nullable"
)

// UserRef is the creator/assignee summary embedded in a task
// @Description Creator or assignee summary
type UserRef struct {
	ID     string  `json:"id" example:"user-1"`
	Name   string  `json:"name" example:"John Doe"`
	Avatar *string `json:"avatar" example:"https://i.pravatar.cc/150?u=john"`
}

// TaskResponse is a task with its creator and assignee
// @Description Task with embedded creator and assignee summaries
type TaskResponse struct {
	ID          string     `json:"id" example:"8d2f5c1e-3b7a-4d90-a4a8-1f6e2b9c7d10"`
	Title       string     `json:"title" example:"Design landing page"`
	Description string     `json:"description" example:"Hero section and pricing table"`
	Status      string     `json:"status" example:"TODO" enums:"TODO,IN_PROGRESS,DONE,CANCELLED"`
	Priority    string     `json:"priority" example:"MEDIUM" enums:"LOW,MEDIUM,HIGH,URGENT"`
	DueDate     *time.Time `json:"dueDate" example:"2025-07-01T00:00:00Z"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CreatorID   string     `json:"creatorId" example:"user-1"`
	AssigneeID  *string    `json:"assigneeId" example:"user-2"`
	ProjectID   *string    `json:"projectId"`
	Creator     *UserRef   `json:"creator"`
	Assignee    *UserRef   `json:"assignee"`
}

// CreateTaskRequest is the body of POST /tasks
type CreateTaskRequest struct {
	Title       string  `json:"title" example:"Design landing page"`
	Description string  `json:"description" example:"Hero section and pricing table"`
	Status      *string `json:"status,omitempty" example:"todo"`
	Priority    *string `json:"priority,omitempty" example:"high"`
	DueDate     *string `json:"dueDate,omitempty" example:"2025-07-01"`
	CreatorID   string  `json:"creatorId" example:"user-1"`
	AssigneeID  *string `json:"assigneeId,omitempty" example:"user-2"`
	ProjectID   *string `json:"projectId,omitempty"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}.
// Absent fields are unchanged; null clears dueDate, assigneeId or projectId.
type UpdateTaskRequest struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	Status      *string                `json:"status,omitempty" example:"in_progress"`
	Priority    *string                `json:"priority,omitempty" example:"urgent"`
	DueDate     nullable.Value[string] `json:"dueDate" swaggertype:"string"`
	AssigneeID  nullable.Value[string] `json:"assigneeId" swaggertype:"string"`
	ProjectID   nullable.Value[string] `json:"projectId" swaggertype:"string"`
}

// ListTasksQuery holds the raw list filters from the query string
type ListTasksQuery struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
}

// TaskStats counts tasks per status
// @Description Board statistics
type TaskStats struct {
	Total      int64 `json:"total" example:"15"`
	Todo       int64 `json:"todo" example:"5"`
	InProgress int64 `json:"inProgress" example:"4"`
	Done       int64 `json:"done" example:"5"`
	Cancelled  int64 `json:"cancelled" example:"1"`
}

// ErrorResponse mirrors the body written by the error middleware
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"Task not found"`
	Code      string `json:"code" example:"NOT_FOUND"`
	RequestID string `json:"request_id,omitempty"`
}
