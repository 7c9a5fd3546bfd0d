package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathdrill/internal/practice"
)

//go:embed static/index.html
var staticFS embed.FS

// Server serves one practice session to a local browser.
type Server struct {
	Router *gin.Engine

	mu       sync.Mutex
	session  *practice.Session
	feedback *feedbackJSON
	advance  practice.Timer

	log    zerolog.Logger
	server *http.Server
}

// NewServer wires routes around session. logger may be nil.
func NewServer(session *practice.Session, logger *zerolog.Logger) *Server {
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	s := &Server{
		Router:  router,
		session: session,
		log:     log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.Router.GET("/", s.handleIndex)

	api := s.Router.Group("/api")
	api.GET("/state", s.handleState)
	api.PUT("/settings", s.handleSettings)
	api.POST("/problem", s.handleNewProblem)
	api.POST("/answer", s.handleAnswer)
	api.POST("/reset", s.handleReset)
}

// Run starts the HTTP server and blocks until it stops. A clean
// Shutdown returns nil.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	s.log.Info().Str("addr", addr).Msg("web widget listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return nil
}

// Shutdown stops the pending auto-advance and gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.advance.Stop()
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}
