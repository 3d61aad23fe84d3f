package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Server wraps http.Server with context-driven graceful shutdown.
type Server struct {
	config Config
	logger *slog.Logger
}

// Option configures a Server during construction.
type Option func(*Server)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(s *Server) {
		s.config = cfg
	}
}

// WithAddr overrides the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.config.Addr = addr
	}
}

// WithShutdownTimeout bounds how long in-flight requests may drain.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.config.ShutdownTimeout = d
	}
}

// WithLogger sets a custom logger for the server.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New creates a server with sane timeout defaults.
func New(opts ...Option) *Server {
	s := &Server{
		config: Config{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves handler until ctx is cancelled or SIGINT/SIGTERM arrives,
// then drains in-flight requests within the shutdown timeout. It blocks
// for the lifetime of the server.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "http server listening", slog.String("addr", s.config.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return errors.Join(ErrServerFailed, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(ErrShutdownFailed, err)
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrServerFailed, err)
	}

	s.logger.Info("http server stopped")
	return nil
}
