package kit

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

func MetricsAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bearerMatches(r.Header.Get("Authorization"), token) {
				WriteText(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerMatches(authz, token string) bool {
	if token == "" || !strings.HasPrefix(authz, bearerPrefix) {
		return false
	}
	got := strings.TrimPrefix(authz, bearerPrefix)
	return subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1
}
