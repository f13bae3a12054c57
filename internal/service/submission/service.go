package submission

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

//go:generate moq -out submission_repo_mock_test.go -pkg submission . submissionRepo
//go:generate moq -out recorder_mock_test.go -pkg submission . recorder

type submissionRepo interface {
	Insert(ctx context.Context, candidateName string, part domain.Part, content string) (*domain.Submission, error)
	ListAll(ctx context.Context) ([]*domain.Submission, error)
	ListByPart(ctx context.Context, part domain.Part) ([]*domain.Submission, error)
	Latest(ctx context.Context, candidateName string, part domain.Part) (*domain.Submission, error)
}

type recorder interface {
	SubmissionStored(part domain.Part)
	SubmissionRejected(code string)
	SubmissionFailed()
}

// Service accepts candidate answers and serves them back for review.
type Service struct {
	repo      submissionRepo
	rec       recorder
	anonymous string
	log       *slog.Logger
}

// NewService creates a new Submission service. anonymousName replaces a
// blank candidate name; an empty value falls back to domain.AnonymousCandidate.
func NewService(
	log *slog.Logger,
	repo submissionRepo,
	rec recorder,
	anonymousName string,
) *Service {
	anonymousName = strings.TrimSpace(anonymousName)
	if anonymousName == "" {
		anonymousName = domain.AnonymousCandidate
	}
	return &Service{
		repo:      repo,
		rec:       rec,
		anonymous: anonymousName,
		log:       log.With("service", "submission"),
	}
}

func (s *Service) candidateName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return s.anonymous
	}
	return name
}
