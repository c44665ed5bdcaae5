// Package middleware provides gin middleware for identity, request
// logging, metrics, and CORS.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/auth"
)

// emailKey is the gin context key the caller's verified email is
// stored under.
const emailKey = "user_email"

// Identity extracts the caller's email and attaches it to the request
// context. Two sources are accepted: a bearer token signed by the
// identity provider, or the X-User-Email header set by a trusted
// gateway. The middleware never rejects; handlers that mutate state
// call Email and fail with 401 themselves, so public reads stay open.
func Identity(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if claims, err := jwtManager.Validate(parts[1]); err == nil {
					c.Set(emailKey, claims.Email)
					c.Next()
					return
				}
			}
		}

		if email := strings.TrimSpace(c.GetHeader("X-User-Email")); email != "" {
			c.Set(emailKey, strings.ToLower(email))
		}
		c.Next()
	}
}

// Email returns the verified email attached by Identity, or false when
// the request carried no usable identity.
func Email(c *gin.Context) (string, bool) {
	email := c.GetString(emailKey)
	return email, email != ""
}
