package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/KaleFarm_Go/internal/farm"
	"github.com/osse101/KaleFarm_Go/internal/handler"
	"github.com/osse101/KaleFarm_Go/internal/logger"
	"github.com/osse101/KaleFarm_Go/internal/metrics"
	"github.com/osse101/KaleFarm_Go/internal/miner"
	"github.com/osse101/KaleFarm_Go/internal/reward"
)

// Config holds the HTTP server settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	MaxBodyBytes   int64
	Detector       DetectorConfig
	// Rewards are published on /version; zero means reward.DefaultParams
	Rewards reward.Params
}

// Server serves the farm API
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance. store may be nil for the in-memory backend.
func NewServer(cfg Config, farmSvc farm.Service, minerSvc miner.Service, store handler.Pinger) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Rewards == (reward.Params{}) {
		cfg.Rewards = reward.DefaultParams()
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(cfg.Detector)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, handler.RulesFrom(cfg.Rewards)))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	farmHandler := handler.NewFarmHandler(farmSvc)
	minerHandler := handler.NewMinerHandler(minerSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

		r.Route("/farm", func(r chi.Router) {
			r.Post("/initialize", farmHandler.Initialize)
			r.Post("/plant", farmHandler.Plant)
			r.Post("/work", farmHandler.Work)
			r.Post("/harvest", farmHandler.Harvest)
			r.Post("/cycle", minerHandler.Cycle)
			r.Get("/total-staked", farmHandler.TotalStaked)
			r.Get("/session-index", farmHandler.SessionIndex)
		})

		r.Route("/farmer", func(r chi.Router) {
			r.Get("/", farmHandler.Farmer)
			r.Get("/balance", farmHandler.Balance)
			r.Get("/total-earned", farmHandler.TotalEarned)
			r.Get("/status", farmHandler.Status)
			r.Get("/challenge", farmHandler.Challenge)
		})

		r.Post("/pow/solve", minerHandler.Solve)

		r.Route("/miner", func(r chi.Router) {
			r.Post("/start", minerHandler.Start)
			r.Post("/stop", minerHandler.Stop)
			r.Get("/stats", minerHandler.Stats)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			WriteTimeout:      DefaultWriteTimeout,
			IdleTimeout:       DefaultIdleTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// requestID reuses a sane client-supplied X-Request-ID or generates one
func requestID(r *http.Request) string {
	if id := r.Header.Get(HeaderRequestID); id != "" && len(id) <= maxRequestIDLength && !strings.ContainsAny(id, " \t\r\n") {
		return id
	}
	return logger.GenerateRequestID()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		id := requestID(r)
		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, id)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
