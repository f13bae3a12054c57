package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// unmatchedRoute labels requests no mux pattern matched, so arbitrary paths
// cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that reports each request to obs, labelled by
// the matched ServeMux pattern. It must wrap the *http.ServeMux directly:
// the mux records the pattern on the request value it receives.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			obs.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
