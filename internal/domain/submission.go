package domain

import "time"

// AnonymousCandidate is the placeholder name stored when a candidate leaves
// the name blank.
const AnonymousCandidate = "anonymous"

// Submission is one immutable stored answer of a candidate to one part.
type Submission struct {
	ID            int64
	CandidateName string
	Part          Part
	Content       string
	CreatedAt     time.Time
}

// Receipt confirms a stored submission to the candidate.
type Receipt struct {
	ID            int64
	CandidateName string
	Part          Part
	CreatedAt     time.Time
	Bytes         int
}

// NewReceipt builds the receipt for a stored submission.
func NewReceipt(s *Submission) *Receipt {
	return &Receipt{
		ID:            s.ID,
		CandidateName: s.CandidateName,
		Part:          s.Part,
		CreatedAt:     s.CreatedAt,
		Bytes:         len(s.Content),
	}
}

// Question is the static prompt shown for a part.
type Question struct {
	Part   Part
	Title  string
	Prompt string
}
