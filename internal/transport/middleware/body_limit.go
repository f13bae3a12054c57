package middleware

import "net/http"

// MaxBody returns middleware that caps request bodies at limit bytes.
// Reads past the cap fail with *http.MaxBytesError, which handlers map to
// 413 Request Entity Too Large. A non-positive limit leaves bodies uncapped.
func MaxBody(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
