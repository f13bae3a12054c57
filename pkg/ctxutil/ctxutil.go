package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	candidateKey ctxKey = "candidate_name"
	requestIDKey ctxKey = "request_id"
)

// WithCandidate stores the candidate name remembered for this browser.
func WithCandidate(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, candidateKey, name)
}

// CandidateFromCtx extracts the candidate name from the context.
// Returns "" and false if the value is missing, blank, or wrong type.
func CandidateFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(candidateKey).(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
