package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/lexicon/middlewares"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
)

const (
	defaultAddress         = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 30 * time.Second
	defaultRequestTimeout  = 10 * time.Second
)

// Server serves the translation API.
type Server struct {
	resolver *i18n.Resolver
	logger   *slog.Logger
	checks   Checks

	address         string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
	shutdownHooks   []func(context.Context) error

	router chi.Router
}

// Option configures the Server.
type Option func(*Server)

// WithAddress sets the listen address.
// Default: ":8080".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.address = addr
		}
	}
}

// WithLogger sets the logger for requests and lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeouts sets the server read and write timeouts and the per-request
// handler deadline. Zero values keep the defaults.
func WithTimeouts(read, write, request time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if write > 0 {
			s.writeTimeout = write
		}
		if request > 0 {
			s.requestTimeout = request
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
// Default: 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithHealthChecks adds readiness checks.
func WithHealthChecks(checks Checks) Option {
	return func(s *Server) {
		for name, check := range checks {
			s.checks[name] = check
		}
	}
}

// WithShutdownHook registers a function run after the HTTP server stopped,
// e.g. closing a database pool. Hooks run in registration order.
func WithShutdownHook(hook func(context.Context) error) Option {
	return func(s *Server) {
		if hook != nil {
			s.shutdownHooks = append(s.shutdownHooks, hook)
		}
	}
}

// New creates a Server for resolver.
func New(resolver *i18n.Resolver, opts ...Option) *Server {
	s := &Server{
		resolver:        resolver,
		logger:          logger.Discard(),
		checks:          make(Checks),
		address:         defaultAddress,
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		requestTimeout:  defaultRequestTimeout,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler with all routes and middlewares.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		middlewares.RequestID(),
		middlewares.Recover(s.logger),
		s.logRequests,
	)

	r.Get("/health/live", liveHandler)
	r.Get("/health/ready", readyHandler(s.checks, s.logger))

	r.Route("/v1", func(r chi.Router) {
		r.Use(
			middleware.Timeout(s.requestTimeout),
			middlewares.Locale(s.resolver),
		)
		r.Get("/translate/{key}", s.translate)
		r.Get("/locales", s.locales)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// logRequests logs one record per request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully and runs
// the shutdown hooks. It returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      s.writeTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range s.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			s.logger.Error("shutdown hook failed", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info("shutdown completed")
	return nil
}
