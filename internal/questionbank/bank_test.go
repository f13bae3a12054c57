package questionbank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

func TestDefault_HasAllParts(t *testing.T) {
	t.Parallel()

	bank := Default()

	all := bank.All()
	require.Len(t, all, 4)
	for i, p := range domain.AllParts {
		assert.Equal(t, p, all[i].Part)
		assert.NotEmpty(t, all[i].Title)
		assert.NotEmpty(t, all[i].Prompt)
	}

	q, ok := bank.Get(domain.PartA)
	require.True(t, ok)
	assert.Contains(t, q.Prompt, "multiples of 3 or 5")
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := Default().Get(domain.Part("E"))
	assert.False(t, ok)
}

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	t.Parallel()

	bank, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().All(), bank.All())
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
parts:
  - part: a
    title: Alpha
    prompt: first
  - part: B
    prompt: second
  - part: C
    title: Gamma
    prompt: third
  - part: D
    title: Delta
    prompt: "  fourth  "
`), 0o644))

	bank, err := Load(path)
	require.NoError(t, err)

	a, _ := bank.Get(domain.PartA)
	assert.Equal(t, "Alpha", a.Title)
	assert.Equal(t, "first", a.Prompt)

	b, _ := bank.Get(domain.PartB)
	assert.Equal(t, "Part B", b.Title, "missing title falls back to part label")

	d, _ := bank.Get(domain.PartD)
	assert.Equal(t, "fourth", d.Prompt)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed",
			yaml:    "{{{",
			wantErr: "decode yaml",
		},
		{
			name:    "missing part",
			yaml:    "parts:\n  - {part: A, prompt: a}\n  - {part: B, prompt: b}\n  - {part: C, prompt: c}\n",
			wantErr: "part D is missing",
		},
		{
			name:    "unknown part",
			yaml:    "parts:\n  - {part: A, prompt: a}\n  - {part: B, prompt: b}\n  - {part: C, prompt: c}\n  - {part: D, prompt: d}\n  - {part: E, prompt: e}\n",
			wantErr: `unknown part "E"`,
		},
		{
			name:    "duplicate part",
			yaml:    "parts:\n  - {part: A, prompt: a}\n  - {part: a, prompt: a2}\n  - {part: B, prompt: b}\n  - {part: C, prompt: c}\n  - {part: D, prompt: d}\n",
			wantErr: "defined twice",
		},
		{
			name:    "empty prompt",
			yaml:    "parts:\n  - {part: A, prompt: ' '}\n  - {part: B, prompt: b}\n  - {part: C, prompt: c}\n  - {part: D, prompt: d}\n",
			wantErr: "empty prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "error %q should contain %q", err, tt.wantErr)
		})
	}
}
