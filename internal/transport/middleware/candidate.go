package middleware

import (
	"net/http"
	"net/url"

	"github.com/heartmarshall/eulerq-candidate-test/pkg/ctxutil"
)

// Candidate returns middleware that reads the remembered candidate name
// from the named cookie into the request context. Requests without the
// cookie pass through unchanged.
func Candidate(cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			name, err := url.QueryUnescape(c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithCandidate(r.Context(), name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
