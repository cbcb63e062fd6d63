// Package gallery serves a browsable page of every registry icon.
//
// It is a development aid: the index shows each icon on both pixel grids and
// /icons/{name} renders a single icon with props taken from the query string.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
)

// Config defines the gallery server configuration. Zero timeouts use the
// defaults.
type Config struct {
	HTTPAddr          string
	ReadHeaderTimeout time.Duration
	// ShutdownTimeout bounds how long in-flight requests may drain once the
	// serving context ends.
	ShutdownTimeout time.Duration
}

// Server hosts the icon gallery.
type Server struct {
	httpAddr        string
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// NewServer builds the gallery server and its routes.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	mux := http.NewServeMux()
	RegisterRoutes(mux, newHandler())

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           mux,
			ReadHeaderTimeout: orDefault(config.ReadHeaderTimeout, defaultReadHeaderTimeout),
		},
		shutdownTimeout: orDefault(config.ShutdownTimeout, defaultShutdownTimeout),
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("icon gallery listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
