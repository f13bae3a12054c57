package submission

import (
	"strings"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

// SubmitInput holds one candidate answer as received at the boundary.
type SubmitInput struct {
	CandidateName string
	Part          string
	Content       string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if _, ok := domain.ParsePart(i.Part); !ok {
		errs = append(errs, domain.FieldError{
			Field:   "part",
			Code:    domain.CodeInvalidPart,
			Message: "must be one of A, B, C, D",
		})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{
			Field:   "content",
			Code:    domain.CodeEmptyAnswer,
			Message: "answer must not be empty",
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput selects submissions for review. An empty Part lists all parts.
type ListInput struct {
	Part string
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Part == "" {
		return nil
	}
	if _, ok := domain.ParsePart(i.Part); !ok {
		return domain.NewValidationError("part", domain.CodeInvalidPart, "must be one of A, B, C, D")
	}
	return nil
}

// LatestInput selects the most recent answer of a candidate for a part.
type LatestInput struct {
	CandidateName string
	Part          string
}

// Validate checks all fields and collects all errors.
func (i LatestInput) Validate() error {
	if _, ok := domain.ParsePart(i.Part); !ok {
		return domain.NewValidationError("part", domain.CodeInvalidPart, "must be one of A, B, C, D")
	}
	return nil
}
