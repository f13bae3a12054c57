// Package questionbank holds the static question definitions shown on the
// part pages. Questions are configuration, not persisted data.
package questionbank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

//go:embed questions.yaml
var builtin []byte

// Bank is an immutable set of questions, one per part.
type Bank struct {
	questions map[domain.Part]domain.Question
}

type fileFormat struct {
	Parts []struct {
		Part   string `yaml:"part"`
		Title  string `yaml:"title"`
		Prompt string `yaml:"prompt"`
	} `yaml:"parts"`
}

// Load reads the question bank from path. An empty path selects the
// built-in questions.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Parse(builtin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questionbank: read %s: %w", path, err)
	}

	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("questionbank: %s: %w", path, err)
	}
	return bank, nil
}

// Default returns the built-in question bank.
func Default() *Bank {
	bank, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("questionbank: built-in questions are invalid: %v", err))
	}
	return bank
}

// Parse decodes a YAML question bank. Every part A..D must be defined
// exactly once with a non-empty prompt.
func Parse(data []byte) (*Bank, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	questions := make(map[domain.Part]domain.Question, len(domain.AllParts))
	var errs []error

	for i, q := range f.Parts {
		part, ok := domain.ParsePart(q.Part)
		if !ok {
			errs = append(errs, fmt.Errorf("parts[%d]: unknown part %q", i, q.Part))
			continue
		}
		if _, dup := questions[part]; dup {
			errs = append(errs, fmt.Errorf("parts[%d]: part %s defined twice", i, part))
			continue
		}

		prompt := strings.TrimSpace(q.Prompt)
		if prompt == "" {
			errs = append(errs, fmt.Errorf("parts[%d]: part %s has an empty prompt", i, part))
			continue
		}

		title := strings.TrimSpace(q.Title)
		if title == "" {
			title = "Part " + part.String()
		}

		questions[part] = domain.Question{Part: part, Title: title, Prompt: prompt}
	}

	for _, p := range domain.AllParts {
		if _, ok := questions[p]; !ok {
			errs = append(errs, fmt.Errorf("part %s is missing", p))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Bank{questions: questions}, nil
}

// Get returns the question for part.
func (b *Bank) Get(part domain.Part) (domain.Question, bool) {
	q, ok := b.questions[part]
	return q, ok
}

// All returns the questions in display order.
func (b *Bank) All() []domain.Question {
	out := make([]domain.Question, 0, len(domain.AllParts))
	for _, p := range domain.AllParts {
		out = append(out, b.questions[p])
	}
	return out
}
