package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/application"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

type memTaskRepo struct {
	seq   int64
	tasks map[int64]entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[int64]entity.Task{}}
}

func (r *memTaskRepo) List(_ context.Context) ([]entity.Task, error) {
	ids := make([]int64, 0, len(r.tasks))
	for id := range r.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]entity.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.tasks[id])
	}
	return out, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.seq++
	t.ID = r.seq
	r.tasks[t.ID] = *t
	return nil
}

func (r *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.tasks[t.ID] = *t
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func taskTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTaskHandler(application.NewTaskService(newMemTaskRepo(), nil), nil)
	r := gin.New()
	r.GET("/api/tasks", h.List)
	r.GET("/api/tasks/:id", h.Get)
	r.POST("/api/tasks", h.Create)
	r.PATCH("/api/tasks/:id", h.Update)
	r.DELETE("/api/tasks/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTaskHandler_CRUD(t *testing.T) {
	r := taskTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/tasks", `{"title": "buy milk"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"buy milk"`)
	require.Contains(t, w.Body.String(), `"success":true`)

	w = doJSON(t, r, http.MethodGet, "/api/tasks/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/tasks/1", `{"completed": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"completed":true`)
	require.Contains(t, w.Body.String(), `"buy milk"`, "title survives partial update")

	w = doJSON(t, r, http.MethodDelete, "/api/tasks/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/tasks/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_BadInput(t *testing.T) {
	r := taskTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/tasks", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/tasks/not-a-number", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/tasks/99", `{"completed": true}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/tasks/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
