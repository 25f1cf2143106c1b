package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/response"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"
)

// RequestID tags the request context with an id for log correlation.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Auth resolves the caller from the session header. Requests without one
// are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RateLimit throttles per user. It must run after Auth.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, ok := model.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			return
		}

		if !m.limiter.allow(sc.UserID) {
			m.l.Warnf(ctx, "middleware.RateLimit: user %s throttled on %s", sc.UserID, c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
