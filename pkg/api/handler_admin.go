package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// loginHandler handles POST /admin.login. Bad credentials answer 403; a
// successful login sets the session cookie.
func (s *Server) loginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := s.admins.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	token, err := s.sessions.Issue(admin.Email)
	if err != nil {
		s.logger.Error("Failed to issue session", "email", admin.Email, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	setSessionCookie(c, token, int(sessionTTL.Seconds()))
	s.logger.Info("Admin logged in", "email", admin.Email)

	c.JSON(http.StatusOK, newAdminResponse(admin))
}

// currentAdminHandler handles GET /admin.current.
func (s *Server) currentAdminHandler(c *gin.Context) {
	c.JSON(http.StatusOK, newAdminResponse(currentAdmin(c)))
}

// logoutHandler handles GET /admin.logout. The cookie is cleared; the signed
// value itself stays valid until its expiry, which is inherent to stateless
// sessions.
func (s *Server) logoutHandler(c *gin.Context) {
	admin := currentAdmin(c)
	setSessionCookie(c, "", -1)
	s.logger.Info("Admin logged out", "email", admin.Email)

	c.JSON(http.StatusOK, newAdminResponse(admin))
}
