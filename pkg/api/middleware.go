package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wordwheel/wheelbot/ent"
)

// adminKey is the gin context key the auth middleware stores the logged-in
// admin under.
const adminKey = "admin"

// securityHeaders returns middleware that sets standard security response
// headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// authRequired validates the session cookie and loads the account it belongs
// to into the context. Requests without a valid session get 401; a valid
// session whose account no longer exists gets 403.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(sessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
			return
		}

		email, err := s.sessions.Verify(value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid session"})
			return
		}

		admin, err := s.admins.GetAdminByEmail(c.Request.Context(), email)
		if err != nil {
			s.logger.Error("Failed to load admin for session", "email", email, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "account no longer exists"})
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}

// currentAdmin returns the admin the middleware put on the context.
func currentAdmin(c *gin.Context) *ent.Admin {
	if v, ok := c.Get(adminKey); ok {
		if a, ok := v.(*ent.Admin); ok {
			return a
		}
	}
	return nil
}
