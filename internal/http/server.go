package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"expensed/internal/events"
	"expensed/internal/log"
	"expensed/internal/middleware/trace"
	"expensed/internal/store"
)

type Server struct {
	http.Server
	store     *store.Store
	publisher events.Publisher
	logger    *log.Logger
	traceMW   *trace.Middleware

	appMetrics struct {
		totalExpenses int64
		uptime        time.Time
	}

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// server. publisher may be nil, which disables event publishing.
func NewServer(addr string, st *store.Store, publisher events.Publisher, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:     st,
		publisher: publisher,
		logger:    logger.WithComponent(log.ComponentHTTP),
		traceMW:   trace.NewMiddleware(trace.ExtractClientIP),
	}
	s.appMetrics.uptime = time.Now()

	mux.Handle("/", s.traceMW.Handler(s.withCORS(s.handleExpenses)))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	return s
}

// withCORS attaches the cross-origin headers to every response the
// dispatcher produces, failures included.
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		metrics := s.traceMW.GetMetrics()
		s.logger.InfoContext(ctx, "Server shutting down",
			"total_requests", metrics.TotalRequests,
			"total_expenses_created", atomic.LoadInt64(&s.appMetrics.totalExpenses))
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	health := map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.appMetrics.uptime).String(),
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(health)
}

// handleReady reports readiness. The store lives in-process, so the
// only failure mode is a server wired without one.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	if s.store == nil {
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	response := map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks": map[string]any{
			"store": map[string]any{
				"configured": s.store != nil,
				"records":    s.storeLen(),
			},
			"events": map[string]any{
				"configured": s.publisher != nil,
			},
		},
	}

	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) storeLen() int {
	if s.store == nil {
		return 0
	}
	return s.store.Len()
}
