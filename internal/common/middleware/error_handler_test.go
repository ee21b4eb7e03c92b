package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-backend/internal/common/errors"
)

func newEngine(register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(), Logger(), HandleErrors())
	register(r)
	return r
}

func get(r *gin.Engine, path string, header http.Header) (*httptest.ResponseRecorder, ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHandleErrors_AppErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{errors.NewValidationError("Title and description are required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{errors.NewConflictError("User", "Email already in use"), http.StatusBadRequest, "CONFLICT"},
		{errors.NewNotFoundError("Task", "x"), http.StatusNotFound, "NOT_FOUND"},
		{errors.Wrap(stderrors.New("disk full"), errors.ErrCodeInternal, "Failed to save"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			r := newEngine(func(r *gin.Engine) {
				r.GET("/x", func(c *gin.Context) { AbortWithError(c, tt.err, "Failed") })
			})

			w, body := get(r, "/x", nil)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body.Code)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.RequestID)
			assert.Equal(t, body.RequestID, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestHandleErrors_PlainErrorUsesFallback(t *testing.T) {
	r := newEngine(func(r *gin.Engine) {
		r.GET("/x", func(c *gin.Context) {
			AbortWithError(c, stderrors.New("dial tcp: connection refused"), "Failed to fetch tasks")
		})
	})

	w, body := get(r, "/x", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch tasks", body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRecovery(t *testing.T) {
	r := newEngine(func(r *gin.Engine) {
		r.GET("/panic", func(c *gin.Context) { panic("boom") })
	})

	w, body := get(r, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRequestID_Propagated(t *testing.T) {
	r := newEngine(func(r *gin.Engine) {
		r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	})

	w, _ := get(r, "/ok", http.Header{"X-Request-Id": []string{"req-42"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
