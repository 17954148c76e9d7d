package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracy/internal/shared"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers that own several routes.
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the exact paths this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and exact path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation for any method
	Fallback(handler http.Handler)                    // Fallback registers the handler for unmatched paths
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// Server owns the listener and the [http.Server] running tracy's routes.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     *log.Logger
	errs       chan error
}

// New creates a [Server] that will bind addr and dispatch to handler.
func New(addr string, handler http.Handler, logger *log.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:     addr,
			Handler:  handler,
			ErrorLog: logger.StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel}),
		},
		logger: logger,
		errs:   make(chan error, 1),
	}
}

// Start binds the listener and serves on a background goroutine.
//
// Bind failures are returned directly; failures after that are delivered on [Server.Err].
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServerStart, err)
	}
	s.listener = ln

	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed", "error", err)
			s.errs <- err
		}
		close(s.errs)
	}()

	return nil
}

// Err returns a channel that receives the serve error, if any, and is closed when serving stops.
func (s *Server) Err() <-chan error {
	return s.errs
}

// Port returns the bound TCP port, or 0 before [Server.Start].
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// URL returns the root URL the window should load.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d/", s.Port())
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.listener == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
