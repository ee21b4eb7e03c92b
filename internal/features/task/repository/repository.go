package repository

import (
	"context"
	"errors"

	"taskboard-backend/internal/domain/task"
)

var ErrTaskNotFound = errors.New("task not found")

// Column names accepted by Update.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldDueDate     = "due_date"
	FieldAssigneeID  = "assignee_id"
	FieldProjectID   = "project_id"
)

// Filter narrows List. Nil fields do not filter. Search is a case-insensitive
// substring matched against title, description and assignee name.
type Filter struct {
	Status   *task.Status
	Priority *task.Priority
	Search   string
}

// TaskRepository persists tasks. Returned tasks carry Creator and Assignee
// summaries (id, name, avatar).
type TaskRepository interface {
	List(ctx context.Context, filter Filter) ([]task.Task, error)
	GetByID(ctx context.Context, id string) (*task.Task, error)
	Create(ctx context.Context, t *task.Task) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[task.Status]int64, error)
	UserExists(ctx context.Context, id string) (bool, error)
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo TaskRepository) error) error
}
