package submission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

// Submit validates and stores one answer. Each successful call appends a
// new row; resubmitting the same part is not deduplicated.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Receipt, error) {
	if err := input.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				s.rec.SubmissionRejected(fe.Code)
			}
		}
		return nil, err
	}

	part, _ := domain.ParsePart(input.Part)
	name := s.candidateName(input.CandidateName)

	stored, err := s.repo.Insert(ctx, name, part, input.Content)
	if err != nil {
		s.rec.SubmissionFailed()
		s.log.ErrorContext(ctx, "submission not stored",
			slog.String("candidate", name),
			slog.String("part", part.String()),
			slog.String("error", err.Error()),
		)
		return nil, &domain.SubmissionError{
			Reason: domain.SubmissionReasonStorageUnavailable,
			Err:    err,
		}
	}

	s.rec.SubmissionStored(part)
	s.log.InfoContext(ctx, "submission stored",
		slog.Int64("submission_id", stored.ID),
		slog.String("candidate", name),
		slog.String("part", part.String()),
		slog.Int("bytes", len(input.Content)),
	)

	return domain.NewReceipt(stored), nil
}
