package mapper

import (
	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/features/task/models"
)

func toUserRef(u *user.User) *models.UserRef {
	if u == nil {
		return nil
	}
	return &models.UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// ToTaskResponse maps a stored task with preloaded relations
func ToTaskResponse(t *task.Task) *models.TaskResponse {
	return &models.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
		ProjectID:   t.ProjectID,
		Creator:     toUserRef(t.Creator),
		Assignee:    toUserRef(t.Assignee),
	}
}

func ToTaskResponses(tasks []task.Task) []*models.TaskResponse {
	out := make([]*models.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, ToTaskResponse(&tasks[i]))
	}
	return out
}

// ToTaskStats folds per-status counts into the stats payload
func ToTaskStats(counts map[task.Status]int64) *models.TaskStats {
	stats := &models.TaskStats{
		Todo:       counts[task.StatusTodo],
		InProgress: counts[task.StatusInProgress],
		Done:       counts[task.StatusDone],
		Cancelled:  counts[task.StatusCancelled],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats
}
