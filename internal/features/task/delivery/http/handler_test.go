package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-backend/internal/common/events"
	"taskboard-backend/internal/common/middleware"
	"taskboard-backend/internal/domain/user"
	taskhttp "taskboard-backend/internal/features/task/delivery/http"
	"taskboard-backend/internal/features/task/models"
	"taskboard-backend/internal/features/task/repository/sqlstore"
	"taskboard-backend/internal/features/task/service"
	"taskboard-backend/internal/testutil"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenInMemoryDB(t)
	avatar := "https://i.pravatar.cc/150?u=john"
	require.NoError(t, db.Create(&user.User{ID: "user-1", Name: "John Doe", Avatar: &avatar, Role: user.RoleManager}).Error)

	svc := service.NewTaskService(sqlstore.NewTaskRepository(db.DB), events.Noop{})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(), middleware.HandleErrors())
	taskhttp.NewTaskHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateThenGet(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/tasks", map[string]string{
		"title":       "A",
		"description": "B",
		"creatorId":   "user-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "TODO", created.Status)
	assert.Equal(t, "MEDIUM", created.Priority)

	w = do(r, http.MethodGet, "/api/tasks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, created.ID, raw["id"])
	assert.Equal(t, "A", raw["title"])
	assert.Equal(t, "B", raw["description"])
	assert.Equal(t, "user-1", raw["creatorId"])
	assert.Nil(t, raw["assignee"])
	assert.Equal(t, map[string]interface{}{
		"id":     "user-1",
		"name":   "John Doe",
		"avatar": "https://i.pravatar.cc/150?u=john",
	}, raw["creator"])
}

func TestCreate_MissingFields(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/tasks", map[string]string{"title": "A", "creatorId": "user-1"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Title and description are required", body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestCreate_MalformedJSON(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingTask_Returns404(t *testing.T) {
	r := newRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body interface{}
		if method == http.MethodPut {
			body = map[string]string{"title": "X"}
		}
		w := do(r, method, "/api/tasks/nope", body)
		assert.Equal(t, http.StatusNotFound, w.Code, method)

		var resp middleware.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Task not found", resp.Error)
	}
}

func TestList_FilterAndStats(t *testing.T) {
	r := newRouter(t)

	for _, status := range []string{"todo", "done", "DONE"} {
		w := do(r, http.MethodPost, "/api/tasks", map[string]string{
			"title": "T", "description": "D", "creatorId": "user-1", "status": status,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(r, http.MethodGet, "/api/tasks?status=done", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []models.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)

	w = do(r, http.MethodGet, "/api/tasks?status=all&priority=all", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 3)

	w = do(r, http.MethodGet, "/api/tasks?priority=whenever", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/tasks/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.TaskStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, models.TaskStats{Total: 3, Todo: 1, Done: 2}, stats)
}

func TestUpdate_ClearsAssigneeWithNull(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/tasks", map[string]string{
		"title": "T", "description": "D", "creatorId": "user-1", "assigneeId": "user-1", "dueDate": "2025-01-02",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Assignee)

	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+created.ID, bytes.NewBufferString(`{"assigneeId":null,"status":"in progress"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Nil(t, updated.Assignee)
	assert.Equal(t, "IN_PROGRESS", updated.Status)
	assert.NotNil(t, updated.DueDate, "absent dueDate is left unchanged")
}
