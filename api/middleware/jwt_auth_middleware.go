package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/squirtles/musicroad/api/controller"
	"github.com/squirtles/musicroad/internal/tokenutil"
)

const (
	ContextKeyUserID   = "x-user-id"
	ContextKeyUserName = "x-user-name"
)

// JwtAuthMiddleware 校验 Authorization: Bearer <token>
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			return
		}

		claims, err := tokenutil.ParseAccessToken(strings.TrimSpace(token), secret)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}

		c.Set(ContextKeyUserID, claims.ID)
		c.Set(ContextKeyUserName, claims.Name)
		c.Next()
	}
}

func CurrentUserName(c *gin.Context) string {
	return c.GetString(ContextKeyUserName)
}
