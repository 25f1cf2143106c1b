package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-management/config"
	"personal-task-management/internal/middleware"
	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	taskMemory "personal-task-management/internal/task/repository/memory"
	taskUsecase "personal-task-management/internal/task/usecase"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/response"
)

const testUser = "u1"

var testNow = time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, time.UTC), middleware.New(log.NewNop(), config.RateLimitConfig{}))
	return r
}

func newRealRouter() *gin.Engine {
	uc := taskUsecase.New(log.NewNop(), taskMemory.New(), datemath.FixedClock(testNow), nil, taskUsecase.CalendarConfig{})
	return newTestRouter(uc)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, testUser)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func createTask(t *testing.T, r *gin.Engine, data map[string]any) map[string]any {
	t.Helper()
	w, out := call(t, r, http.MethodPost, "/api/v1/tasks/action", map[string]any{"action": "create", "data": data})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	return out["task"].(map[string]any)
}

func TestUnauthorized(t *testing.T) {
	r := newRealRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestActionDispatch(t *testing.T) {
	r := newRealRouter()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{name: "create", body: map[string]any{"action": "create", "data": map[string]any{"content": "Buy milk", "due_date": "2024-06-10"}}, wantStatus: http.StatusOK, wantMsg: "Task created successfully"},
		{name: "create without content", body: map[string]any{"action": "create", "data": map[string]any{"due_date": "2024-06-10"}}, wantStatus: http.StatusBadRequest, wantMsg: "content is required"},
		{name: "create blank content", body: map[string]any{"action": "create", "data": map[string]any{"content": "  "}}, wantStatus: http.StatusBadRequest, wantMsg: "content is required"},
		{name: "bad due date", body: map[string]any{"action": "create", "data": map[string]any{"content": "x", "due_date": "soon"}}, wantStatus: http.StatusBadRequest},
		{name: "update without id", body: map[string]any{"action": "update", "data": map[string]any{"content": "x"}}, wantStatus: http.StatusBadRequest, wantMsg: "id is required"},
		{name: "update unknown id", body: map[string]any{"action": "update", "id": "ghost", "data": map[string]any{"content": "x"}}, wantStatus: http.StatusNotFound, wantMsg: "task not found"},
		{name: "delete unknown id", body: map[string]any{"action": "delete", "id": "ghost"}, wantStatus: http.StatusNotFound},
		{name: "unsupported verb", body: map[string]any{"action": "archive", "id": "x"}, wantStatus: http.StatusMethodNotAllowed, wantMsg: "unsupported action"},
		{name: "malformed body", body: "{not json", wantStatus: http.StatusBadRequest, wantMsg: "invalid request body"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, out := call(t, r, http.MethodPost, "/api/v1/tasks/action", tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if success := out["success"] == true; success != (tc.wantStatus == http.StatusOK) {
				t.Errorf("success = %v", out["success"])
			}
			if tc.wantMsg != "" && out["message"] != tc.wantMsg {
				t.Errorf("message = %v, want %q", out["message"], tc.wantMsg)
			}
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	r := newRealRouter()
	created := createTask(t, r, map[string]any{"content": "Draft", "due_date": "2024-06-10", "projectId": "p1"})
	id := created["id"].(string)

	// null clears, absent keeps
	w, out := call(t, r, http.MethodPost, "/api/v1/tasks/action", map[string]any{
		"action": "update", "id": id, "data": map[string]any{"due_date": nil, "content": "Final"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	updated := out["task"].(map[string]any)
	if updated["content"] != "Final" || updated["due_date"] != nil || updated["projectId"] != "p1" {
		t.Errorf("updated = %v", updated)
	}

	w, out = call(t, r, http.MethodPost, "/api/v1/tasks/action", map[string]any{"action": "delete", "id": id})
	if w.Code != http.StatusOK || out["id"] != id {
		t.Fatalf("delete: %d %v", w.Code, out)
	}
	if w, _ := call(t, r, http.MethodGet, "/api/v1/tasks/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("detail after delete = %d, want 404", w.Code)
	}
}

func TestViewsAndCounts(t *testing.T) {
	r := newRealRouter()
	createTask(t, r, map[string]any{"content": "today inbox", "due_date": "2024-06-10"})
	createTask(t, r, map[string]any{"content": "someday"})
	createTask(t, r, map[string]any{"content": "next week", "due_date": "2024-06-17T09:00:00Z"})

	views := map[string]int{"today": 1, "inbox": 3, "upcoming": 2, "completed": 0}
	for view, want := range views {
		w, out := call(t, r, http.MethodGet, "/api/v1/tasks/"+view, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d", view, w.Code)
		}
		data := out["data"].(map[string]any)
		if got := int(data["total"].(float64)); got != want {
			t.Errorf("%s total = %d, want %d", view, got, want)
		}
	}

	w, out := call(t, r, http.MethodGet, "/api/v1/tasks/counts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("counts: status %d", w.Code)
	}
	counts := out["data"].(map[string]any)
	if counts["inboxTasks"] != float64(3) || counts["todayTasks"] != float64(1) {
		t.Errorf("counts = %v", counts)
	}
}

func TestToggle(t *testing.T) {
	r := newRealRouter()
	id := createTask(t, r, map[string]any{"content": "ship"})["id"].(string)
	path := "/api/v1/tasks/" + id + "/toggle"

	w, out := call(t, r, http.MethodPatch, path, map[string]any{"completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: %d %s", w.Code, w.Body.String())
	}
	if out["message"] != "Task completed" {
		t.Errorf("message = %v", out["message"])
	}
	undo, ok := out["undo"].(map[string]any)
	if !ok || undo["completed"] != false {
		t.Errorf("undo hint = %v", out["undo"])
	}

	w, out = call(t, r, http.MethodPatch, path, map[string]any{"completed": false})
	if w.Code != http.StatusOK || out["undo"] != nil {
		t.Errorf("reopen: %d undo=%v", w.Code, out["undo"])
	}

	if w, _ := call(t, r, http.MethodPatch, path, map[string]any{}); w.Code != http.StatusBadRequest {
		t.Errorf("missing completed = %d, want 400", w.Code)
	}
}

// failingUC fails every view with a service error.
type failingUC struct {
	task.UseCase
}

func (failingUC) Today(context.Context, model.Scope) (task.ListOutput, error) {
	return task.ListOutput{}, task.ErrLoadToday
}

func TestServiceErrorIsHidden(t *testing.T) {
	r := newTestRouter(failingUC{})

	w, out := call(t, r, http.MethodGet, "/api/v1/tasks/today", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if out["message"] != response.DefaultErrorMessage {
		t.Errorf("message = %v", out["message"])
	}
}
