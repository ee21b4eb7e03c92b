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

	"taskboard-backend/internal/common/middleware"
	"taskboard-backend/internal/domain/task"
	userhttp "taskboard-backend/internal/features/user/delivery/http"
	"taskboard-backend/internal/features/user/models"
	"taskboard-backend/internal/features/user/repository/sqlstore"
	"taskboard-backend/internal/features/user/service"
	"taskboard-backend/internal/platform/database"
	"taskboard-backend/internal/testutil"
)

func newRouter(t *testing.T) (*gin.Engine, *database.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenInMemoryDB(t)
	svc := service.NewUserService(sqlstore.NewUserRepository(db.DB))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(), middleware.HandleErrors())
	userhttp.NewUserHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, db
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserLifecycle(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodPost, "/api/users", `{"name":"Alice","email":"alice@example.com","role":"manager"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "MANAGER", created.Role)

	w = do(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = do(r, http.MethodGet, "/api/users/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var env models.UserEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "Alice", env.User.Name)

	w = do(r, http.MethodPatch, "/api/users/"+created.ID, `{"email":null,"name":"Alicia"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Alicia", env.User.Name)
	assert.Nil(t, env.User.Email)

	w = do(r, http.MethodDelete, "/api/users/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/users/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errBody middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.False(t, errBody.Success)
	assert.Equal(t, "User not found", errBody.Error)
}

func TestCreateUser_DuplicateEmailIs400(t *testing.T) {
	r, _ := newRouter(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/users", `{"name":"A","email":"a@example.com"}`).Code)

	w := do(r, http.MethodPost, "/api/users", `{"name":"B","email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Email already in use", body.Error)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestDeleteUser_WithTasksIs400(t *testing.T) {
	r, db := newRouter(t)

	w := do(r, http.MethodPost, "/api/users", `{"name":"Creator"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	require.NoError(t, db.Create(&task.Task{
		ID: "t1", Title: "T", Description: "D", Status: task.StatusTodo, Priority: task.PriorityMedium, CreatorID: created.ID,
	}).Error)

	w = do(r, http.MethodDelete, "/api/users/"+created.ID, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
