// Package diag serves an optional HTTP endpoint for metrics, the latest status
// lines and out-of-band command injection.
package diag

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Southclaws/fault/ftag"
	"github.com/genricoloni/duoplayer/internal/command"
	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/genricoloni/duoplayer/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// Submitter accepts one raw command line
type Submitter interface {
	Submit(ctx context.Context, line []byte) error
}

// StatusSource exposes the most recent line of every status type
type StatusSource interface {
	Last() map[string]json.RawMessage
}

// Server is the diagnostics HTTP server. It is disabled when no address is configured.
type Server struct {
	logger   *zap.Logger
	addr     string
	metrics  *metrics.Metrics
	status   StatusSource
	commands Submitter

	router chi.Router
	srv    *http.Server
}

// NewServer builds the router; nothing listens until Start
func NewServer(logger *zap.Logger, cfg domain.Config, m *metrics.Metrics, status StatusSource, commands Submitter) *Server {
	s := &Server{
		logger:   logger,
		addr:     cfg.DiagAddr(),
		metrics:  m,
		status:   status,
		commands: commands,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Get("/metrics", m.Handler().ServeHTTP)
	r.Get("/status", s.getStatus)
	r.Post("/command", s.postCommand)
	s.router = r
	return s
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves in the background
func (s *Server) Start(ctx context.Context) error {
	if s.addr == "" {
		s.logger.Debug("Diagnostics server disabled")
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return domain.Failed(err, "cannot start diagnostics server")
	}

	s.srv = &http.Server{Handler: s.router, ReadHeaderTimeout: readHeaderTimeout}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Diagnostics server error", zap.Error(err))
		}
	}()

	s.logger.Info("Diagnostics server started", zap.String("addr", ln.Addr().String()))
	return nil
}

// Stop drains open connections
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("Diagnostics server stopped")
	return nil
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status.Last()); err != nil {
		s.logger.Warn("Failed to encode status snapshot", zap.Error(err))
	}
}

func (s *Server) postCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, command.MaxLineSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	if err := s.commands.Submit(r.Context(), body); err != nil {
		if ftag.Get(err) == ftag.InvalidArgument {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("Diagnostics request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.Int("size", ww.BytesWritten()))
		})
	}
}
