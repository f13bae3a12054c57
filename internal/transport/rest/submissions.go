package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
	"github.com/heartmarshall/eulerq-candidate-test/internal/service/submission"
)

// submissionLister defines the minimal interface needed by SubmissionHandler.
type submissionLister interface {
	List(ctx context.Context, input submission.ListInput) ([]*domain.Submission, error)
	Latest(ctx context.Context, input submission.LatestInput) (*domain.Submission, error)
}

// SubmissionHandler serves the read-only review export.
type SubmissionHandler struct {
	svc submissionLister
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionLister, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submissions")}
}

type submissionResponse struct {
	ID            int64     `json:"id"`
	CandidateName string    `json:"candidateName"`
	Part          string    `json:"part"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
}

type listResponse struct {
	Submissions []submissionResponse `json:"submissions"`
	Total       int                  `json:"total"`
}

// List handles GET /api/submissions with an optional ?part= filter.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.List(r.Context(), submission.ListInput{
		Part: r.URL.Query().Get("part"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := listResponse{
		Submissions: make([]submissionResponse, 0, len(subs)),
		Total:       len(subs),
	}
	for _, s := range subs {
		resp.Submissions = append(resp.Submissions, toSubmissionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Latest handles GET /api/submissions/latest?candidate=&part=.
func (h *SubmissionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sub, err := h.svc.Latest(r.Context(), submission.LatestInput{
		CandidateName: q.Get("candidate"),
		Part:          q.Get("part"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

func (h *SubmissionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:            s.ID,
		CandidateName: s.CandidateName,
		Part:          s.Part.String(),
		Content:       s.Content,
		CreatedAt:     s.CreatedAt,
	}
}
