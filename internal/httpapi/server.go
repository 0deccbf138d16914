// Package httpapi is the HTTP front door: the welcome page, the admin
// console over every entity kind, health and metrics.
package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/safar/loja/internal/metrics"
	"github.com/safar/loja/internal/models"
)

const welcomeText = "Bem-vindo a Loja NNAYAS!"

// Repository is the part of the store the admin console drives.
type Repository interface {
	Create(ctx context.Context, e models.Entity) (models.Entity, error)
	Get(ctx context.Context, kind models.Kind, id int64) (models.Entity, error)
	Update(ctx context.Context, e models.Entity) (models.Entity, error)
	Delete(ctx context.Context, kind models.Kind, id int64) error
	ListChildren(ctx context.Context, parent models.Kind, parentID int64, child models.Kind) ([]models.Entity, error)
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	repo    Repository
	pinger  Pinger
	metrics *metrics.Metrics
	log     *zap.Logger
}

type Option func(*Server)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

func WithHealthCheck(p Pinger) Option {
	return func(s *Server) { s.pinger = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

func NewServer(repo Repository, opts ...Option) *Server {
	s := &Server{repo: repo, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed and instrumented handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	mux.HandleFunc("GET /admin", s.handleAdminIndex)
	mux.HandleFunc("POST /admin/{resource}", s.handleCreate)
	mux.HandleFunc("GET /admin/{resource}/{id}", s.handleGet)
	mux.HandleFunc("PUT /admin/{resource}/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /admin/{resource}/{id}", s.handleDelete)
	mux.HandleFunc("GET /admin/{resource}/{id}/{child}", s.handleListChildren)

	return s.requestID(s.accessLog(s.instrument(mux)))
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(welcomeText))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
