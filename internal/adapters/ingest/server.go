package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	maxBodyBytes    = 32 << 20
	shutdownTimeout = 5 * time.Second
)

// GraphSource provides the published graphs served to clients.
type GraphSource interface {
	Latest() (*domain.ClusterGraph, bool)
	Subscribe() (<-chan *domain.ClusterGraph, func())
}

// Instrumenter wraps plain HTTP handlers with request metrics.
type Instrumenter interface {
	Instrument(route string, next http.Handler) http.Handler
	Handler() http.Handler
}

// Server is the HTTP ingest and publication server.
type Server struct {
	addr     string
	observe  ObserveFunc
	graphs   GraphSource
	metrics  Instrumenter
	logger   ports.Logger
	upgrader websocket.Upgrader
	maxBody  int64
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, observe ObserveFunc, graphs GraphSource, metrics Instrumenter, logger ports.Logger) *Server {
	return &Server{
		addr:    addr,
		observe: observe,
		graphs:  graphs,
		metrics: metrics,
		logger:  logger,
		maxBody: maxBodyBytes,
		upgrader: websocket.Upgrader{
			// Instrumentation runs inside arbitrary pages.
			CheckOrigin:     func(*http.Request) bool { return true },
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
		},
	}
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/observations", s.metrics.Instrument("observations", http.HandlerFunc(s.postObservations)))
	mux.HandleFunc("GET /v1/observations/stream", s.observationStream)
	mux.Handle("GET /v1/graphs/latest", s.metrics.Instrument("graphs_latest", http.HandlerFunc(s.latestGraph)))
	mux.HandleFunc("GET /v1/graphs/stream", s.graphStream)
	mux.Handle("GET /healthz", s.metrics.Instrument("healthz", http.HandlerFunc(healthz)))
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.addr)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("ingest server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
	return nil
}

func (s *Server) postObservations(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		status := http.StatusBadRequest
		if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.logger.Debug("failed to read observation body", "error", err.Error())
		writeError(w, status, err)
		return
	}

	records, err := DecodeRecords(body)
	if err != nil {
		s.logger.Debug("rejected observation", "error", err.Error())
		writeError(w, http.StatusBadRequest, err)
		return
	}

	for _, rec := range records {
		s.observe(r.Context(), rec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]int{"accepted": len(records)})
}

func (s *Server) latestGraph(w http.ResponseWriter, _ *http.Request) {
	g, ok := s.graphs.Latest()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(g)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
