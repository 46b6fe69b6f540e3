package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix   = "Bearer "
	ctxUsernameKey = "username"
)

// authMiddleware guards protected routes. An absent or empty Authorization
// header answers 401; any other header is verified and answers 403 when the
// token is invalid or expired.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Message: http.StatusText(http.StatusUnauthorized)})
		return
	}

	// A bare token without the prefix is accepted as-is.
	username, err := h.services.ParseToken(strings.Replace(header, bearerPrefix, "", 1))
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, MessageResponse{Message: http.StatusText(http.StatusForbidden)})
		return
	}

	// store in Gin context
	c.Set(ctxUsernameKey, username)
	c.Next()
}
