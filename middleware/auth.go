package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todoboard/auth"
	"todoboard/logger"
)

// AuthRequired rejects requests without a valid bearer token and stashes
// the verified identity in the gin context under "userId" / "identity".
// No handler behind it runs, and no store call is made, until the token
// checks out.
func AuthRequired(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Sugar.Warnw("token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userId", identity.UID)
		c.Set("identity", identity)
		c.Next()
	}
}
