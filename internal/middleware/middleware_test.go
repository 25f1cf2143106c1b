package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-task-management/config"
	"personal-task-management/internal/model"
	"personal-task-management/pkg/log"
)

func newTestRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), cfg)

	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	r.POST("/generate", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func do(r *gin.Engine, method, path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if user != "" {
		req.Header.Set(HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := newTestRouter(config.RateLimitConfig{})

	if w := do(r, http.MethodGet, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", w.Code)
	}
	if w := do(r, http.MethodGet, "/me", "   "); w.Code != http.StatusUnauthorized {
		t.Errorf("blank header: status = %d, want 401", w.Code)
	}

	w := do(r, http.MethodGet, "/me", "u1")
	if w.Code != http.StatusOK || w.Body.String() != "u1" {
		t.Errorf("status = %d body = %q", w.Code, w.Body.String())
	}
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("request id header not set")
	}
}

func TestRateLimitPerUser(t *testing.T) {
	r := newTestRouter(config.RateLimitConfig{GeneratePerMin: 1, Burst: 2})

	for i := 0; i < 2; i++ {
		if w := do(r, http.MethodPost, "/generate", "u1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
	if w := do(r, http.MethodPost, "/generate", "u1"); w.Code != http.StatusTooManyRequests {
		t.Errorf("third request: status = %d, want 429", w.Code)
	}
	if w := do(r, http.MethodPost, "/generate", "u2"); w.Code != http.StatusOK {
		t.Errorf("other user: status = %d, want 200", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newTestRouter(config.RateLimitConfig{})
	for i := 0; i < 20; i++ {
		if w := do(r, http.MethodPost, "/generate", "u1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}
