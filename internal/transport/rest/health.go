package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
// *sql.DB satisfies it.
type dbPinger interface {
	PingContext(ctx context.Context) error
}

type submissionCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	counter submissionCounter
	version string
}

// NewHealthHandler creates a HealthHandler. counter may be nil.
func NewHealthHandler(db dbPinger, counter submissionCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, counter: counter, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status      string                `json:"status"`
	Version     string                `json:"version,omitempty"`
	Components  map[string]CompStatus `json:"components,omitempty"`
	Submissions *int                  `json:"submissions,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings DB with latency measurement and
// reports the version and the number of stored submissions.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus),
	}

	start := time.Now()
	err := h.db.PingContext(ctx)
	latency := time.Since(start)

	if err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
	} else {
		resp.Components["database"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
		if h.counter != nil {
			if n, err := h.counter.Count(ctx); err == nil {
				resp.Submissions = &n
			}
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
