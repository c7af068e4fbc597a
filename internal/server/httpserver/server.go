// Package httpserver is the dashboard's presentation layer: the login and
// dashboard pages, the JSON data endpoint and the listener lifecycle.
package httpserver

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/logging"
	"github.com/dmitrijs2005/studentboard/internal/server/auth"
	"github.com/dmitrijs2005/studentboard/internal/server/services"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// SessionGate is the subset of *auth.Gate the handlers use.
type SessionGate interface {
	Login(username, password string) bool
	Issue(w http.ResponseWriter) error
	Session(r *http.Request) (*auth.Claims, error)
	RequireAuth(r *http.Request) bool
	Logout(w http.ResponseWriter, r *http.Request)
}

// Dashboard is the subset of *services.DashboardService the handlers use.
type Dashboard interface {
	Summary() services.Summary
	Page(n int) (services.Page, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	gate      SessionGate
	dashboard Dashboard
	pages     *template.Template
}

func NewHTTPServer(a string, l logging.Logger, g SessionGate, d Dashboard) (*HTTPServer, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		gate:      g,
		dashboard: d,
		pages:     pages,
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled,
// then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
