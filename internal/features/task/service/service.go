package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/events"
	"taskboard-backend/internal/common/logger"
	"taskboard-backend/internal/common/nullable"
	"taskboard-backend/internal/common/validation"
	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/features/task/mapper"
	"taskboard-backend/internal/features/task/models"
	"taskboard-backend/internal/features/task/repository"
	"taskboard-backend/internal/platform/database"
)

// filterAll disables a list filter.
const filterAll = "all"

type TaskService interface {
	ListTasks(ctx context.Context, query models.ListTasksQuery) ([]*models.TaskResponse, error)
	GetTask(ctx context.Context, id string) (*models.TaskResponse, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.TaskResponse, error)
	UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*models.TaskResponse, error)
	DeleteTask(ctx context.Context, id string) (*models.TaskResponse, error)
	GetStats(ctx context.Context) (*models.TaskStats, error)
}

type taskService struct {
	repo      repository.TaskRepository
	publisher events.Publisher
}

func NewTaskService(repo repository.TaskRepository, publisher events.Publisher) TaskService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &taskService{repo: repo, publisher: publisher}
}

func (s *taskService) ListTasks(ctx context.Context, query models.ListTasksQuery) ([]*models.TaskResponse, error) {
	filter := repository.Filter{Search: strings.TrimSpace(query.Search)}

	if v := strings.TrimSpace(query.Status); v != "" && !strings.EqualFold(v, filterAll) {
		status, err := task.ParseStatus(v)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("status", err.Error())
		}
		filter.Status = &status
	}
	if v := strings.TrimSpace(query.Priority); v != "" && !strings.EqualFold(v, filterAll) {
		priority, err := task.ParsePriority(v)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("priority", err.Error())
		}
		filter.Priority = &priority
	}

	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskResponses(tasks), nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*models.TaskResponse, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	return mapper.ToTaskResponse(t), nil
}

func (s *taskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("Title and description are required")
	}
	if err := validation.ValidateTitle(title); err != nil {
		return nil, apperrors.NewFieldValidationError("title", err.Error())
	}
	if err := validation.ValidateDescription(description); err != nil {
		return nil, apperrors.NewFieldValidationError("description", err.Error())
	}

	creatorID := strings.TrimSpace(req.CreatorID)
	if creatorID == "" {
		return nil, apperrors.NewValidationError("Creator ID is required")
	}

	t := &task.Task{
		Title:       title,
		Description: description,
		Status:      task.StatusTodo,
		Priority:    task.PriorityMedium,
		CreatorID:   creatorID,
		AssigneeID:  validation.NilIfBlank(req.AssigneeID),
		ProjectID:   validation.NilIfBlank(req.ProjectID),
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status, err := task.ParseStatus(*req.Status)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("status", err.Error())
		}
		t.Status = status
	}
	if req.Priority != nil && strings.TrimSpace(*req.Priority) != "" {
		priority, err := task.ParsePriority(*req.Priority)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("priority", err.Error())
		}
		t.Priority = priority
	}
	if due := validation.NilIfBlank(req.DueDate); due != nil {
		parsed, err := validation.ParseISODate(*due)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("dueDate", err.Error())
		}
		t.DueDate = &parsed
	}

	var created *task.Task
	err := s.repo.Transaction(ctx, func(tx repository.TaskRepository) error {
		if err := requireUser(ctx, tx, t.CreatorID, "Creator not found"); err != nil {
			return err
		}
		if t.AssigneeID != nil {
			if err := requireUser(ctx, tx, *t.AssigneeID, "Assignee not found"); err != nil {
				return err
			}
		}
		if err := tx.Create(ctx, t); err != nil {
			return err
		}
		var err error
		created, err = tx.GetByID(ctx, t.ID)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err, t.ID)
	}

	resp := mapper.ToTaskResponse(created)
	s.publish(ctx, events.TaskCreated, resp)
	return resp, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*models.TaskResponse, error) {
	fields := make(map[string]interface{})

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := validation.ValidateTitle(title); err != nil {
			return nil, apperrors.NewFieldValidationError("title", err.Error())
		}
		fields[repository.FieldTitle] = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if err := validation.ValidateDescription(description); err != nil {
			return nil, apperrors.NewFieldValidationError("description", err.Error())
		}
		fields[repository.FieldDescription] = description
	}
	if req.Status != nil {
		status, err := task.ParseStatus(*req.Status)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("status", err.Error())
		}
		fields[repository.FieldStatus] = status
	}
	if req.Priority != nil {
		priority, err := task.ParsePriority(*req.Priority)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("priority", err.Error())
		}
		fields[repository.FieldPriority] = priority
	}
	if due := blankAsNull(req.DueDate); due.Set {
		var value *time.Time
		if due.Valid {
			parsed, err := validation.ParseISODate(due.V)
			if err != nil {
				return nil, apperrors.NewFieldValidationError("dueDate", err.Error())
			}
			value = &parsed
		}
		fields[repository.FieldDueDate] = value
	}
	if project := blankAsNull(req.ProjectID); project.Set {
		fields[repository.FieldProjectID] = project.Ptr()
	}
	assignee := blankAsNull(req.AssigneeID)
	if assignee.Set {
		fields[repository.FieldAssigneeID] = assignee.Ptr()
	}

	var updated *task.Task
	err := s.repo.Transaction(ctx, func(tx repository.TaskRepository) error {
		if _, err := tx.GetByID(ctx, id); err != nil {
			return err
		}
		if assignee.Valid {
			if err := requireUser(ctx, tx, assignee.V, "Assignee not found"); err != nil {
				return err
			}
		}
		if err := tx.Update(ctx, id, fields); err != nil {
			return err
		}
		var err error
		updated, err = tx.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err, id)
	}

	resp := mapper.ToTaskResponse(updated)
	s.publish(ctx, events.TaskUpdated, resp)
	return resp, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) (*models.TaskResponse, error) {
	var deleted *task.Task
	err := s.repo.Transaction(ctx, func(tx repository.TaskRepository) error {
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, mapRepoError(err, id)
	}

	resp := mapper.ToTaskResponse(deleted)
	s.publish(ctx, events.TaskDeleted, resp)
	return resp, nil
}

func (s *taskService) GetStats(ctx context.Context) (*models.TaskStats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskStats(counts), nil
}

func (s *taskService) publish(ctx context.Context, eventType string, payload *models.TaskResponse) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		logger.Warn().Err(err).Str("event", eventType).Str("task_id", payload.ID).Msg("Failed to publish task event")
	}
}

func requireUser(ctx context.Context, tx repository.TaskRepository, id, message string) error {
	ok, err := tx.UserExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError(message).WithDetail("userId", id)
	}
	return nil
}

// blankAsNull trims the value and treats an empty string like null.
func blankAsNull(v nullable.Value[string]) nullable.Value[string] {
	if !v.Valid {
		return v
	}
	trimmed := strings.TrimSpace(v.V)
	if trimmed == "" {
		return nullable.Null[string]()
	}
	return nullable.Of(trimmed)
}

func mapRepoError(err error, id string) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		return apperrors.NewNotFoundError("Task", id)
	case errors.Is(err, database.ErrReferenced):
		return apperrors.NewValidationError("Referenced user does not exist")
	}
	return err
}
