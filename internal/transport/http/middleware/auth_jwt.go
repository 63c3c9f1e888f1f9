package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"listkeeper/internal/core/auth"
	resp "listkeeper/internal/transport/http/response"
)

// KeyUserID is the gin context key carrying the authenticated caller's uuid.
const KeyUserID = "userId"

// AuthJWT terminates the request with 401 before any handler runs when the
// bearer token is missing or invalid.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Err(c, http.StatusUnauthorized, "missing token")
			c.Abort()
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Err(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
