package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ironsheep/placeholder-png/internal/placeholder"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// shutdownTimeout bounds how long Shutdown waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

// ImageCreator renders a placeholder request to PNG bytes.
type ImageCreator interface {
	CreateImage(context.Context, placeholder.Request) ([]byte, error)
}

// Server serves placeholder images over HTTP.
type Server struct {
	images ImageCreator
	logger *slog.Logger
	http   *http.Server
}

// New creates a server that will listen on addr.
func New(addr string, images ImageCreator, logger *slog.Logger) *Server {
	s := &Server{
		images: images,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the gin engine serving the placeholder routes.
func (s *Server) Handler() http.Handler {
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.HandleMethodNotAllowed = true

	engine.Use(s.logRequests(), s.recoverPanics())

	engine.GET("/:size", s.handleSize)
	engine.GET("/:size/:bg/:fg", s.handleColors)
	engine.GET("/:size/:bg/:fg/:caption", s.handleCaption)
	return engine
}

// Start listens on the configured address, logs one startup line and
// serves until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}

	s.logger.Info("server running", "addr", "http://"+ln.Addr().String())

	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
