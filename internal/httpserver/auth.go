package httpserver

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verifier decides whether an Authorization header grants admin access.
type Verifier interface {
	Verify(authorization string) bool
}

// StaticSecretVerifier accepts exactly "Bearer <secret>".
type StaticSecretVerifier struct {
	secret string
}

func NewStaticSecretVerifier(secret string) *StaticSecretVerifier {
	return &StaticSecretVerifier{secret: secret}
}

func (v *StaticSecretVerifier) Verify(authorization string) bool {
	if v.secret == "" {
		return false
	}
	want := "Bearer " + v.secret
	return subtle.ConstantTimeCompare([]byte(authorization), []byte(want)) == 1
}

func adminAuth(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if verifier == nil || !verifier.Verify(header) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
