package kit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// IPRateLimiter is a sliding-window limiter keyed by client IP.
// X-Forwarded-For is only honoured when trustForwardedFor is set, i.e. when
// a proxy in front of the server owns that header.
type IPRateLimiter struct {
	mu                sync.Mutex
	limit             int
	window            time.Duration
	trustForwardedFor bool
	hits              map[string][]time.Time
	lastSweep         time.Time

	now func() time.Time
}

func NewIPRateLimiter(limit int, window time.Duration, trustForwardedFor bool) *IPRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &IPRateLimiter{
		limit:             limit,
		window:            window,
		trustForwardedFor: trustForwardedFor,
		hits:              make(map[string][]time.Time),
		now:               time.Now,
	}
}

func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(l.clientIP(r)) {
			WriteText(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) Allow(key string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	ts := prune(l.hits[key], cutoff)
	if len(ts) >= l.limit {
		l.hits[key] = ts
		return false
	}

	l.hits[key] = append(ts, now)
	return true
}

// sweep drops every key with no hit inside the window. Caller holds mu.
func (l *IPRateLimiter) sweep(cutoff time.Time) {
	for key, ts := range l.hits {
		if ts = prune(ts, cutoff); len(ts) == 0 {
			delete(l.hits, key)
		} else {
			l.hits[key] = ts
		}
	}
}

func (l *IPRateLimiter) keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	n := 0
	for _, t := range ts {
		if t.After(cutoff) {
			ts[n] = t
			n++
		}
	}
	return ts[:n]
}

func (l *IPRateLimiter) clientIP(r *http.Request) string {
	if l.trustForwardedFor {
		if ip := firstForwardedFor(r.Header.Get("X-Forwarded-For")); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}

	return r.RemoteAddr
}

func firstForwardedFor(xff string) string {
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}
