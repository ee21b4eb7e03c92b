package task

import (
	"fmt"
	"strings"
	"time"

	"taskboard-backend/internal/domain/user"
)

// Status is the board column of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusCancelled  Status = "CANCELLED"
)

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone, StatusCancelled}

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// ParseStatus accepts any casing plus the "in progress", "in-progress" and "inprogress" spellings.
func ParseStatus(s string) (Status, error) {
	v := Status(normalize(s))
	if v == "INPROGRESS" {
		v = StatusInProgress
	}
	for _, st := range Statuses {
		if v == st {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid status %q: expected one of TODO, IN_PROGRESS, DONE, CANCELLED", s)
}

// ParsePriority accepts any casing.
func ParsePriority(s string) (Priority, error) {
	v := Priority(normalize(s))
	for _, p := range Priorities {
		if v == p {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q: expected one of LOW, MEDIUM, HIGH, URGENT", s)
}

// Task is a work item on the board.
// Deleting its creator is restricted; deleting its assignee unassigns it.
type Task struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"type:text;not null"`
	Status      Status     `gorm:"type:varchar(16);not null;default:TODO;index"`
	Priority    Priority   `gorm:"type:varchar(16);not null;default:MEDIUM;index"`
	DueDate     *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
	CreatorID   string     `gorm:"type:varchar(36);not null;index"`
	Creator     *user.User `gorm:"foreignKey:CreatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AssigneeID  *string    `gorm:"type:varchar(36);index"`
	Assignee    *user.User `gorm:"foreignKey:AssigneeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	ProjectID   *string    `gorm:"type:varchar(36)"`
}

func (Task) TableName() string { return "tasks" }
