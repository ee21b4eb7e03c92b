package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-backend/internal/common/validation"
	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/features/task/repository"
	"taskboard-backend/internal/platform/database"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}

// withRelations preloads creator and assignee summaries.
func (r *taskRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Creator", userSummary).
		Preload("Assignee", userSummary)
}

func (r *taskRepository) List(ctx context.Context, filter repository.Filter) ([]task.Task, error) {
	q := r.withRelations(ctx).Model(&task.Task{})

	if filter.Status != nil {
		q = q.Where("tasks.status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("tasks.priority = ?", *filter.Priority)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + validation.EscapeLike(strings.ToLower(search)) + "%"
		q = q.Joins("LEFT JOIN users AS assignee ON assignee.id = tasks.assignee_id").
			Select("tasks.*").
			Where(`(LOWER(tasks.title) LIKE ? ESCAPE '\' OR LOWER(tasks.description) LIKE ? ESCAPE '\' OR LOWER(assignee.name) LIKE ? ESCAPE '\')`,
				pattern, pattern, pattern)
	}

	var tasks []task.Task
	if err := q.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	err := r.withRelations(ctx).Where("id = ?", id).Take(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &t, nil
}

func (r *taskRepository) Create(ctx context.Context, t *task.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", database.TranslateError(err))
	}
	return nil
}

func (r *taskRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&task.Task{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", database.TranslateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&task.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) CountByStatus(ctx context.Context) (map[task.Status]int64, error) {
	var rows []struct {
		Status task.Status
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&task.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	counts := make(map[task.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *taskRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return n > 0, nil
}

func (r *taskRepository) Transaction(ctx context.Context, fn func(repo repository.TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&taskRepository{db: tx})
	})
}
