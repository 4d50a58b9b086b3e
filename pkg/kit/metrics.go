package kit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "laptopstore"

	labelService = "service"
	labelMethod  = "method"
	labelRoute   = "route"
	labelStatus  = "status"

	defaultStatusCode = http.StatusOK
)

type Metrics struct {
	Requests       *prometheus.CounterVec
	Latency        *prometheus.HistogramVec
	ProductsLoaded *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status.",
			},
			[]string{labelService, labelMethod, labelRoute, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP handler latency.",
				Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{labelService, labelMethod, labelRoute},
		),
		ProductsLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_products_loaded",
				Help:      "Products held by the in-memory store.",
			},
			[]string{labelService},
		),
	}

	reg.MustRegister(m.Requests, m.Latency, m.ProductsLoaded)
	return m
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (m *Metrics) Middleware(service string, routeLabel func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{
				ResponseWriter: w,
				status:         defaultStatusCode,
			}

			start := time.Now()
			next.ServeHTTP(sw, r)

			route := routeLabel(r)
			m.Latency.WithLabelValues(service, r.Method, route).
				Observe(time.Since(start).Seconds())

			m.Requests.WithLabelValues(service, r.Method, route, strconv.Itoa(sw.status)).
				Inc()
		})
	}
}

// Unmatched requests share one label so probing paths cannot grow cardinality.
func RoutePatternOrPath(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if rp := rctx.RoutePattern(); rp != "" && rp != "/*" {
		return rp
	}
	return "unmatched"
}
