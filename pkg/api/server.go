// Package api implements the admin panel HTTP server: login with a signed
// session cookie and management of the question pool.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wordwheel/wheelbot/pkg/database"
	"github.com/wordwheel/wheelbot/pkg/services"
)

// Server holds the panel's dependencies and the running HTTP server.
type Server struct {
	db        *database.Client
	admins    *services.AdminService
	questions *services.QuestionService
	sessions  *SessionCodec
	logger    *slog.Logger

	httpServer *http.Server
}

// NewServer wires the admin panel around the shared database client.
// sessionKey signs the session cookies.
func NewServer(db *database.Client, sessionKey string) *Server {
	return &Server{
		db:        db,
		admins:    services.NewAdminService(db.Client),
		questions: services.NewQuestionService(db.Client),
		sessions:  NewSessionCodec(sessionKey),
		logger:    slog.Default().With("component", "api"),
	}
}

// Router builds the gin engine with all panel routes. Everything except
// login and health requires a valid session.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.POST("/admin.login", s.loginHandler)

	authed := router.Group("", s.authRequired())
	authed.GET("/admin.current", s.currentAdminHandler)
	authed.GET("/admin.logout", s.logoutHandler)
	authed.POST("/game/add_question", s.addQuestionHandler)
	authed.POST("/game/delete_question", s.deleteQuestionHandler)
	authed.GET("/game/list_questions", s.listQuestionsHandler)

	return router
}

// Start serves the panel on addr; it blocks until Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
