package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminSessionCookie carries the signed admin session token.
const AdminSessionCookie = "admin_session"

// SessionVerifier validates admin session tokens.
type SessionVerifier interface {
	VerifySession(token string) error
}

// HasAdminSession reports whether the request carries a valid admin session cookie.
func HasAdminSession(c *gin.Context, verifier SessionVerifier) bool {
	token, err := c.Cookie(AdminSessionCookie)
	if err != nil || token == "" {
		return false
	}
	return verifier.VerifySession(token) == nil
}

// AdminSessionMiddleware rejects API requests without a valid admin session.
func AdminSessionMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasAdminSession(c, verifier) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
