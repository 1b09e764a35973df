package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/transport/http/handler"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

type fakeTaskUsecase struct {
	list   func(ctx context.Context, userID string) ([]*domain.Task, error)
	create func(ctx context.Context, userID, title string) (*domain.Task, error)
	update func(ctx context.Context, userID, taskID string, input usecase.UpdateTaskInput) (*domain.Task, error)
	delete func(ctx context.Context, userID, taskID string) error
}

func (f *fakeTaskUsecase) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return f.list(ctx, userID)
}

func (f *fakeTaskUsecase) Create(ctx context.Context, userID, title string) (*domain.Task, error) {
	return f.create(ctx, userID, title)
}

func (f *fakeTaskUsecase) Update(ctx context.Context, userID, taskID string, input usecase.UpdateTaskInput) (*domain.Task, error) {
	return f.update(ctx, userID, taskID, input)
}

func (f *fakeTaskUsecase) Delete(ctx context.Context, userID, taskID string) error {
	return f.delete(ctx, userID, taskID)
}

// newTaskEngine mounts the handler behind a stub session gate that
// injects a fixed userID, the way middleware.Auth would.
func newTaskEngine(uc *fakeTaskUsecase, userID string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewTaskHandler(uc, logger)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.GET("/api/todos", h.List)
	r.POST("/api/todos", h.Create)
	r.PUT("/api/todos/:id", h.Update)
	r.DELETE("/api/todos/:id", h.Delete)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// ---- List ----

func TestList_ReturnsTasksForCurrentUser(t *testing.T) {
	var requested string
	uc := &fakeTaskUsecase{
		list: func(_ context.Context, userID string) ([]*domain.Task, error) {
			requested = userID
			return []*domain.Task{
				{ID: "task-2", UserID: userID, Title: "Newer", CreatedAt: time.Now()},
				{ID: "task-1", UserID: userID, Title: "Older", CreatedAt: time.Now().Add(-time.Hour)},
			}, nil
		},
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodGet, "/api/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if requested != "alice" {
		t.Errorf("listed for %q, want %q", requested, "alice")
	}

	var items []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 || items[0].ID != "task-2" || items[1].ID != "task-1" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestList_Empty_ReturnsEmptyArray(t *testing.T) {
	uc := &fakeTaskUsecase{
		list: func(_ context.Context, _ string) ([]*domain.Task, error) {
			return nil, nil
		},
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodGet, "/api/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}

// ---- Create ----

func TestCreate_Returns201WithTask(t *testing.T) {
	uc := &fakeTaskUsecase{
		create: func(_ context.Context, userID, title string) (*domain.Task, error) {
			return &domain.Task{ID: "task-1", UserID: userID, Title: title}, nil
		},
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodPost, "/api/todos", `{"title":"Buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var resp struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" || resp.Title != "Buy milk" || resp.Completed {
		t.Errorf("unexpected task: %+v", resp)
	}
}

func TestCreate_MissingTitle_Returns400(t *testing.T) {
	uc := &fakeTaskUsecase{}
	w := do(t, newTaskEngine(uc, "alice"), http.MethodPost, "/api/todos", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreate_WhitespaceTitle_Returns400(t *testing.T) {
	uc := &fakeTaskUsecase{
		create: func(_ context.Context, _, _ string) (*domain.Task, error) {
			return nil, domain.ErrEmptyTitle
		},
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodPost, "/api/todos", `{"title":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// ---- Update ----

func TestUpdate_PassesPartialFields(t *testing.T) {
	var captured usecase.UpdateTaskInput
	uc := &fakeTaskUsecase{
		update: func(_ context.Context, _, taskID string, input usecase.UpdateTaskInput) (*domain.Task, error) {
			captured = input
			return &domain.Task{ID: taskID, Title: "Buy groceries", Completed: true}, nil
		},
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodPut, "/api/todos/task-1", `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if captured.Title != nil {
		t.Error("title was supplied but absent from the request")
	}
	if captured.Completed == nil || !*captured.Completed {
		t.Error("completed=true not passed through")
	}
}

func TestUpdate_NotFound_Returns404(t *testing.T) {
	uc := &fakeTaskUsecase{
		update: func(_ context.Context, _, _ string, _ usecase.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodPut, "/api/todos/missing", `{"completed":true}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdate_NotOwner_Returns401(t *testing.T) {
	uc := &fakeTaskUsecase{
		update: func(_ context.Context, _, _ string, _ usecase.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrNotOwner
		},
	}

	w := do(t, newTaskEngine(uc, "bob"), http.MethodPut, "/api/todos/task-1", `{"completed":true}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

// ---- Delete ----

func TestDelete_Success_Returns200(t *testing.T) {
	uc := &fakeTaskUsecase{
		delete: func(_ context.Context, _, _ string) error { return nil },
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodDelete, "/api/todos/task-1", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "removed") {
		t.Errorf("body %q has no removal message", w.Body.String())
	}
}

func TestDelete_NotFound_Returns404(t *testing.T) {
	uc := &fakeTaskUsecase{
		delete: func(_ context.Context, _, _ string) error { return domain.ErrTaskNotFound },
	}

	w := do(t, newTaskEngine(uc, "alice"), http.MethodDelete, "/api/todos/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDelete_NotOwner_Returns401(t *testing.T) {
	uc := &fakeTaskUsecase{
		delete: func(_ context.Context, _, _ string) error { return domain.ErrNotOwner },
	}

	w := do(t, newTaskEngine(uc, "bob"), http.MethodDelete, "/api/todos/task-1", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
