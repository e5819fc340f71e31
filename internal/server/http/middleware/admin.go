package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pawshope/internal/server/http/dto"
)

const adminRealm = `Basic realm="pawshope admin", charset="UTF-8"`

// CredentialVerifier validates operator credentials.
type CredentialVerifier interface {
	Enabled() bool
	Verify(user, password string) error
}

// AdminRequired guards operator endpoints with HTTP basic auth when verifier is enabled.
func AdminRequired(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil || !verifier.Enabled() {
			c.Next()
			return
		}

		user, password, ok := c.Request.BasicAuth()
		if !ok || verifier.Verify(user, password) != nil {
			c.Header("WWW-Authenticate", adminRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Next()
	}
}
