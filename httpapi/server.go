// Package httpapi exposes the assistant over HTTP: a chat endpoint driving
// the agent loop, booking endpoints for the test drive UI and a read-only
// analytics endpoint.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dealerdesk/showroom"
	"github.com/dealerdesk/showroom/logging"
)

// Server wraps the showroom façade behind an http.Server.
type Server struct {
	showroom   *showroom.Showroom
	logger     logging.Logger
	router     chi.Router
	httpServer *http.Server
}

// Options configure the HTTP server.
type Options struct {
	// Addr defaults to ":8080".
	Addr string
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
	// RequestTimeout bounds one request end to end. Defaults to 30s.
	RequestTimeout time.Duration
}

// New builds the server and its routes.
func New(sr *showroom.Showroom, optFns ...func(o *Options)) *Server {
	opts := Options{
		Addr:           ":8080",
		Logger:         logging.NoOpLogger{},
		RequestTimeout: 30 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	s := &Server{showroom: sr, logger: opts.Logger}
	s.router = s.buildRouter(opts.RequestTimeout)
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) buildRouter(timeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Get("/analytics/{sessionID}", s.handleAnalytics)
		r.Post("/sessions/{sessionID}/reset", s.handleReset)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", s.handleBook)
			r.Get("/slots", s.handleSlots)
			r.Put("/{bookingID}", s.handleReschedule)
			r.Delete("/{bookingID}", s.handleCancel)
		})
	})

	return r
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving until the listener fails or Shutdown is
// called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http.listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
