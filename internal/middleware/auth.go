package middleware

import (
	"net/http"
	"strings"

	"kejaspace/internal/pkg/jwt"
	"kejaspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores the account id on the
// context. A nil jwt service means auth is unconfigured: every
// protected request is rejected rather than silently allowed.
func Auth(jwtSvc *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			response.Error(c, http.StatusServiceUnavailable, "Authentication is not configured")
			c.Abort()
			return
		}

		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Next()
	}
}
