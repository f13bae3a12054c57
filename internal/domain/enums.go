package domain

import "strings"

// Part identifies one of the fixed question groups a candidate answers.
type Part string

const (
	PartA Part = "A"
	PartB Part = "B"
	PartC Part = "C"
	PartD Part = "D"
)

// AllParts lists the recognized parts in display order.
var AllParts = []Part{PartA, PartB, PartC, PartD}

func (p Part) String() string { return string(p) }

func (p Part) IsValid() bool {
	switch p {
	case PartA, PartB, PartC, PartD:
		return true
	}
	return false
}

// Lower returns the lower-case form used in URLs.
func (p Part) Lower() string { return strings.ToLower(string(p)) }

// ParsePart normalizes s (trim, upper-case) and reports whether it names a
// recognized part.
func ParsePart(s string) (Part, bool) {
	p := Part(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.IsValid()
}
