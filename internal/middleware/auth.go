package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/model"
	"uxo-chatbot/pkg/response"
)

const scopeKey = "scope"

// Auth requires "Authorization: Bearer <token>" naming an existing admin.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			m.l.Debugf(ctx, "internal.middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		a, err := m.admins.Detail(ctx, payload.AdminID)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: admin %d: %v", payload.AdminID, err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{AdminID: a.ID, Email: a.Email})
		c.Next()
	}
}

// GetScope returns the admin set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
