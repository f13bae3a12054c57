package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/eulerq-candidate-test/internal/metrics"
	"github.com/heartmarshall/eulerq-candidate-test/internal/transport/middleware"
	"github.com/heartmarshall/eulerq-candidate-test/internal/transport/rest"
	"github.com/heartmarshall/eulerq-candidate-test/internal/transport/web"
)

// RouterDeps holds everything the HTTP router dispatches to.
type RouterDeps struct {
	Logger      *slog.Logger
	Web         *web.Handler
	Submissions *rest.SubmissionHandler
	Health      *rest.HealthHandler
	// Metrics is optional; nil disables /metrics and request metrics.
	Metrics *metrics.Metrics
	// Limiter is optional; nil disables submit throttling. Run only builds
	// one when server.submit_rate_per_minute is positive.
	Limiter         *middleware.RateLimiter
	SubmitPerMin    int
	MaxBodyBytes    int64
	CandidateCookie string
}

// NewRouter builds the application handler: routes plus the middleware stack.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Candidate pages
	mux.HandleFunc("GET /{$}", d.Web.Home)
	mux.HandleFunc("POST /start", d.Web.Start)
	mux.HandleFunc("GET /part/{id}", d.Web.Part)
	mux.Handle("POST /submit", throttle(d.Limiter, d.SubmitPerMin, d.Web)(http.HandlerFunc(d.Web.Submit)))
	mux.Handle("GET /static/", web.Static())

	// Review export
	mux.HandleFunc("GET /api/submissions", d.Submissions.List)
	mux.HandleFunc("GET /api/submissions/latest", d.Submissions.Latest)

	// Probes
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	var observe middleware.Middleware
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
		observe = middleware.Metrics(d.Metrics)
	}

	mux.HandleFunc("/", d.Web.NotFound)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.Candidate(d.CandidateCookie),
		middleware.MaxBody(d.MaxBodyBytes),
		observe, // innermost: reads the pattern the mux sets on the request
	)(mux)
}

func throttle(rl *middleware.RateLimiter, perMinute int, pages *web.Handler) middleware.Middleware {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Limit(perMinute, http.HandlerFunc(pages.TooManySubmissions))
}
