package submission

import (
	"context"
	"fmt"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

// List returns stored submissions, most recent first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Part == "" {
		subs, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list submissions: %w", err)
		}
		return subs, nil
	}

	part, _ := domain.ParsePart(input.Part)
	subs, err := s.repo.ListByPart(ctx, part)
	if err != nil {
		return nil, fmt.Errorf("list submissions for part %s: %w", part, err)
	}
	return subs, nil
}

// Latest returns the most recent answer of a candidate for a part.
// Returns domain.ErrNotFound if there is none.
func (s *Service) Latest(ctx context.Context, input LatestInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	part, _ := domain.ParsePart(input.Part)
	sub, err := s.repo.Latest(ctx, s.candidateName(input.CandidateName), part)
	if err != nil {
		return nil, fmt.Errorf("latest submission: %w", err)
	}
	return sub, nil
}
