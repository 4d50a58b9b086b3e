package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"LaptopStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// RateLimit of 0 disables the per-IP limiter.
	RateLimit         int
	RateLimitWindow   time.Duration
	TrustForwardedFor bool
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, s, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(log))

	if deps.RateLimit > 0 {
		r.Use(kit.NewIPRateLimiter(deps.RateLimit, deps.RateLimitWindow, deps.TrustForwardedFor).Middleware)
	}
}

func setupMetrics(r *chi.Mux, s *Server, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	metrics.ProductsLoaded.WithLabelValues(deps.Service).Set(float64(s.Store.Len()))
	r.Use(metrics.Middleware(deps.Service, kit.RoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
