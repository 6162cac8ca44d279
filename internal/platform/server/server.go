package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server は HTTP サーバーのライフサイクルを管理します。
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	logger          zerolog.Logger
	shutdownTimeout time.Duration
}

// Options は Server の構築パラメータです。
type Options struct {
	ListenAddr      string
	GraphQLHandler  http.Handler
	Logger          zerolog.Logger
	ShutdownTimeout time.Duration
	Registry        *prometheus.Registry
}

// New は /graphql と運用系エンドポイントを公開する HTTP サーバーを構築します。
func New(opts Options) *Server {
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests by path and status code.",
	}, []string{"path", "status"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
	registry.MustRegister(requestsTotal, requestDuration)

	mux := http.NewServeMux()
	mux.Handle("/graphql", opts.GraphQLHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	handler := withRequestLogging(mux, opts.Logger, requestsTotal, requestDuration)

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		handler:         handler,
		logger:          opts.Logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler はルーティング済みのハンドラーを返します。
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run はサーバーを起動し、コンテキストがキャンセルされると Shutdown します。
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withRequestLogging(next http.Handler, logger zerolog.Logger, requestsTotal *prometheus.CounterVec, requestDuration *prometheus.HistogramVec) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		elapsed := time.Since(start)
		requestsTotal.WithLabelValues(r.URL.Path, fmt.Sprintf("%d", recorder.status)).Inc()
		requestDuration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("elapsed", elapsed).
			Msg("http request")
	})
}
