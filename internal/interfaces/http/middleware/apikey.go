package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EchoNews615/komibot/internal/shared/config"
	"github.com/EchoNews615/komibot/internal/shared/utils"
)

// APIKeyAuth guards mutating routes with a shared key in the X-API-Key
// header. When auth is disabled the middleware passes every request
// through; the server logs a startup warning in that case.
func APIKeyAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or missing API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
