package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/events"
	"taskboard-backend/internal/common/nullable"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/features/task/models"
	"taskboard-backend/internal/features/task/repository/sqlstore"
	"taskboard-backend/internal/features/task/service"
	"taskboard-backend/internal/platform/database"
	"taskboard-backend/internal/testutil"
)

func strPtr(s string) *string { return &s }

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return p.err
}

func seedUsers(t *testing.T, db *database.DB) {
	t.Helper()
	users := []user.User{
		{ID: "user-1", Name: "John Doe", Avatar: strPtr("https://i.pravatar.cc/150?u=john"), Role: user.RoleManager},
		{ID: "user-2", Name: "Jane Smith", Role: user.RoleMember},
	}
	require.NoError(t, db.Create(&users).Error)
}

func newService(t *testing.T) (service.TaskService, *recordingPublisher, *database.DB) {
	t.Helper()
	db := testutil.OpenInMemoryDB(t)
	seedUsers(t, db)
	pub := &recordingPublisher{}
	return service.NewTaskService(sqlstore.NewTaskRepository(db.DB), pub), pub, db
}

func create(t *testing.T, svc service.TaskService, req models.CreateTaskRequest) *models.TaskResponse {
	t.Helper()
	if req.CreatorID == "" {
		req.CreatorID = "user-1"
	}
	created, err := svc.CreateTask(context.Background(), req)
	require.NoError(t, err)
	return created
}

func TestCreateTask_Defaults(t *testing.T) {
	svc, pub, _ := newService(t)

	created := create(t, svc, models.CreateTaskRequest{Title: "A", Description: "B"})

	assert.Equal(t, "TODO", created.Status)
	assert.Equal(t, "MEDIUM", created.Priority)
	assert.Nil(t, created.DueDate)
	assert.Nil(t, created.Assignee)
	require.NotNil(t, created.Creator)
	assert.Equal(t, "user-1", created.Creator.ID)
	assert.Equal(t, "John Doe", created.Creator.Name)
	assert.Equal(t, []string{events.TaskCreated}, pub.events)
}

func TestCreateTask_NormalizesAndParses(t *testing.T) {
	svc, _, _ := newService(t)

	created := create(t, svc, models.CreateTaskRequest{
		Title:       "A",
		Description: "B",
		Status:      strPtr("in progress"),
		Priority:    strPtr("high"),
		DueDate:     strPtr("2025-06-05"),
		AssigneeID:  strPtr("user-2"),
		ProjectID:   strPtr(""),
	})

	assert.Equal(t, "IN_PROGRESS", created.Status)
	assert.Equal(t, "HIGH", created.Priority)
	require.NotNil(t, created.DueDate)
	assert.True(t, created.DueDate.Equal(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, created.Assignee)
	assert.Equal(t, "Jane Smith", created.Assignee.Name)
	assert.Nil(t, created.ProjectID)
}

func TestCreateTask_Validation(t *testing.T) {
	svc, pub, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateTaskRequest
		message string
	}{
		{"missing title", models.CreateTaskRequest{Description: "B", CreatorID: "user-1"}, "Title and description are required"},
		{"missing description", models.CreateTaskRequest{Title: "A", CreatorID: "user-1"}, "Title and description are required"},
		{"missing creator", models.CreateTaskRequest{Title: "A", Description: "B"}, "Creator ID is required"},
		{"unknown creator", models.CreateTaskRequest{Title: "A", Description: "B", CreatorID: "nobody"}, "Creator not found"},
		{"unknown assignee", models.CreateTaskRequest{Title: "A", Description: "B", CreatorID: "user-1", AssigneeID: strPtr("nobody")}, "Assignee not found"},
		{"bad status", models.CreateTaskRequest{Title: "A", Description: "B", CreatorID: "user-1", Status: strPtr("later")}, "status"},
		{"bad due date", models.CreateTaskRequest{Title: "A", Description: "B", CreatorID: "user-1", DueDate: strPtr("soon")}, "dueDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation), err.Error())
			assert.Contains(t, err.Error(), tt.message)
		})
	}
	assert.Empty(t, pub.events)
}

func TestListTasks_Filters(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	create(t, svc, models.CreateTaskRequest{Title: "Write docs", Description: "API reference", Status: strPtr("DONE"), Priority: strPtr("LOW")})
	create(t, svc, models.CreateTaskRequest{Title: "Fix login", Description: "Session expires", Priority: strPtr("HIGH"), AssigneeID: strPtr("user-2")})
	create(t, svc, models.CreateTaskRequest{Title: "Deploy", Description: "Ship 100% of it", Status: strPtr("in_progress"), Priority: strPtr("HIGH")})

	all, err := svc.ListTasks(ctx, models.ListTasksQuery{Status: "all", Priority: "ALL"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	done, err := svc.ListTasks(ctx, models.ListTasksQuery{Status: "done"})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "Write docs", done[0].Title)

	high, err := svc.ListTasks(ctx, models.ListTasksQuery{Priority: "High"})
	require.NoError(t, err)
	assert.Len(t, high, 2)

	both, err := svc.ListTasks(ctx, models.ListTasksQuery{Status: "In_Progress", Priority: "high"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Deploy", both[0].Title)

	_, err = svc.ListTasks(ctx, models.ListTasksQuery{Status: "someday"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func TestListTasks_SearchIsUnionOverTitleDescriptionAssignee(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	create(t, svc, models.CreateTaskRequest{Title: "Jane's onboarding", Description: "Accounts"})
	create(t, svc, models.CreateTaskRequest{Title: "Review", Description: "Ask JANE for input"})
	create(t, svc, models.CreateTaskRequest{Title: "Budget", Description: "Q3", AssigneeID: strPtr("user-2")})
	create(t, svc, models.CreateTaskRequest{Title: "Unrelated", Description: "Nothing here"})

	found, err := svc.ListTasks(ctx, models.ListTasksQuery{Search: "jane"})
	require.NoError(t, err)

	titles := make([]string, 0, len(found))
	for _, f := range found {
		titles = append(titles, f.Title)
	}
	assert.ElementsMatch(t, []string{"Jane's onboarding", "Review", "Budget"}, titles)
}

func TestListTasks_SearchFoldsNonASCII(t *testing.T) {
	svc, _, db := newService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&user.User{ID: "user-3", Name: "Émile Zola", Role: user.RoleMember}).Error)
	create(t, svc, models.CreateTaskRequest{Title: "Ölwechsel planen", Description: "Werkstatt"})
	create(t, svc, models.CreateTaskRequest{Title: "Inventory", Description: "Count ÄPFEL"})
	create(t, svc, models.CreateTaskRequest{Title: "Letters", Description: "Post", AssigneeID: strPtr("user-3")})
	create(t, svc, models.CreateTaskRequest{Title: "Unrelated", Description: "Nothing here"})

	tests := []struct {
		search string
		want   string
	}{
		{"ölwechsel", "Ölwechsel planen"},
		{"ÖLWECHSEL", "Ölwechsel planen"},
		{"äpfel", "Inventory"},
		{"émile", "Letters"},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			found, err := svc.ListTasks(ctx, models.ListTasksQuery{Search: tt.search})
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, tt.want, found[0].Title)
		})
	}
}

func TestListTasks_SearchEscapesWildcards(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	create(t, svc, models.CreateTaskRequest{Title: "Coverage at 100%", Description: "tests"})
	create(t, svc, models.CreateTaskRequest{Title: "Coverage at 1000", Description: "tests"})

	found, err := svc.ListTasks(ctx, models.ListTasksQuery{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Coverage at 100%", found[0].Title)
}

func TestListTasks_NewestFirst(t *testing.T) {
	svc, _, db := newService(t)
	ctx := context.Background()

	older := create(t, svc, models.CreateTaskRequest{Title: "Older", Description: "x"})
	newer := create(t, svc, models.CreateTaskRequest{Title: "Newer", Description: "x"})
	require.NoError(t, db.Exec("UPDATE tasks SET created_at = ? WHERE id = ?", "2020-01-01 00:00:00", older.ID).Error)

	list, err := svc.ListTasks(ctx, models.ListTasksQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestMissingTask_NotFoundEverywhere(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.GetTask(ctx, "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))

	_, err = svc.UpdateTask(ctx, "missing", models.UpdateTaskRequest{Title: strPtr("X")})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))

	_, err = svc.DeleteTask(ctx, "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "Task not found")
}

func TestUpdateTask_Partial(t *testing.T) {
	svc, pub, _ := newService(t)
	ctx := context.Background()

	created := create(t, svc, models.CreateTaskRequest{
		Title: "A", Description: "B", DueDate: strPtr("2025-06-05"), AssigneeID: strPtr("user-2"),
	})

	updated, err := svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{Status: strPtr("done")})
	require.NoError(t, err)
	assert.Equal(t, "DONE", updated.Status)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "MEDIUM", updated.Priority)
	require.NotNil(t, updated.DueDate)
	require.NotNil(t, updated.Assignee)
	assert.Equal(t, "user-2", updated.Assignee.ID)

	cleared, err := svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{
		AssigneeID: nullable.Null[string](),
		DueDate:    nullable.Null[string](),
		Priority:   strPtr("urgent"),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.Assignee)
	assert.Nil(t, cleared.AssigneeID)
	assert.Nil(t, cleared.DueDate)
	assert.Equal(t, "URGENT", cleared.Priority)
	assert.Equal(t, "DONE", cleared.Status)

	assert.Equal(t, []string{events.TaskCreated, events.TaskUpdated, events.TaskUpdated}, pub.events)
}

func TestUpdateTask_Validation(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	created := create(t, svc, models.CreateTaskRequest{Title: "A", Description: "B"})

	_, err := svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{Title: strPtr("  ")})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	_, err = svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{AssigneeID: nullable.Of("nobody")})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	assert.Contains(t, err.Error(), "Assignee not found")

	_, err = svc.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{Priority: strPtr("someday")})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func TestDeleteTask_ReturnsSnapshot(t *testing.T) {
	svc, pub, _ := newService(t)
	ctx := context.Background()
	created := create(t, svc, models.CreateTaskRequest{Title: "A", Description: "B", AssigneeID: strPtr("user-2")})

	deleted, err := svc.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	require.NotNil(t, deleted.Creator)
	require.NotNil(t, deleted.Assignee)

	_, err = svc.GetTask(ctx, created.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
	assert.Equal(t, events.TaskDeleted, pub.events[len(pub.events)-1])
}

func TestDeletingAssigneeUnassignsTask(t *testing.T) {
	svc, _, db := newService(t)
	ctx := context.Background()
	created := create(t, svc, models.CreateTaskRequest{Title: "A", Description: "B", AssigneeID: strPtr("user-2")})

	require.NoError(t, db.Where("id = ?", "user-2").Delete(&user.User{}).Error)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssigneeID)
	assert.Nil(t, got.Assignee)
}

func TestGetStats(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	create(t, svc, models.CreateTaskRequest{Title: "A", Description: "x"})
	create(t, svc, models.CreateTaskRequest{Title: "B", Description: "x", Status: strPtr("done")})
	create(t, svc, models.CreateTaskRequest{Title: "C", Description: "x", Status: strPtr("done")})
	create(t, svc, models.CreateTaskRequest{Title: "D", Description: "x", Status: strPtr("cancelled")})

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStats{Total: 4, Todo: 1, Done: 2, Cancelled: 1}, *stats)
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	seedUsers(t, db)
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := service.NewTaskService(sqlstore.NewTaskRepository(db.DB), pub)

	_, err := svc.CreateTask(context.Background(), models.CreateTaskRequest{Title: "A", Description: "B", CreatorID: "user-1"})
	assert.NoError(t, err)
}
