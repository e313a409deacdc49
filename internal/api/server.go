// Package api serves the Hall's reference data, quiz scoring and visit
// statistics over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/zerohall/internal/store"
)

// StatsRepo is the read side of the event store used by the stats routes.
type StatsRepo interface {
	TraitDistribution(ctx context.Context) ([]store.TraitCount, error)
	RoomVisitCounts(ctx context.Context) ([]store.RoomCount, error)
}

// Config configures the HTTP server.
type Config struct {
	Addr           string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Server is the read-only HTTP API.
type Server struct {
	cfg    Config
	stats  StatsRepo
	logger *slog.Logger
}

// NewServer creates a server. stats may be nil, in which case the stats
// routes respond 503.
func NewServer(cfg Config, stats StatsRepo, logger *slog.Logger) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, stats: stats, logger: logger}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/rooms", s.listRooms)
		ar.Get("/rooms/{room}", s.getRoom)

		ar.Route("/quiz", func(qr chi.Router) {
			qr.Get("/questions", s.listQuestions)
			qr.Get("/traits", s.listTraits)
			qr.Post("/score", s.score)
		})

		ar.Route("/stats", func(sr chi.Router) {
			sr.Get("/traits", s.traitStats)
			sr.Get("/rooms", s.roomStats)
		})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
