package web

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
	"github.com/heartmarshall/eulerq-candidate-test/internal/questionbank"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(questionbank.Default(), RendererConfig{
		Title:         "EulerQ Candidate Test",
		AutosaveEvery: 5 * time.Second,
	})
	require.NoError(t, err)
	return r
}

func TestRenderHome_ListsAllParts(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	page, err := r.RenderHome("Alice")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.Status)

	body := string(page.Body)
	for _, p := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, body, `href="/part/`+p+`"`)
	}
	assert.Contains(t, body, `action="/start"`)
	assert.Contains(t, body, `value="Alice"`)
}

func TestRenderPart_CaseInsensitive(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	for _, id := range []string{"a", "A", " a "} {
		page, err := r.RenderPart(id, "")
		require.NoError(t, err, id)

		body := string(page.Body)
		assert.Contains(t, body, "multiples of 3 or 5")
		assert.Contains(t, body, `action="/submit"`)
		assert.Contains(t, body, `name="part" value="A"`)
		assert.Contains(t, body, `data-draft-part="A"`)
		assert.Contains(t, body, `data-autosave-ms="5000"`)
	}
}

func TestRenderPart_PrefillsCandidate(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	page, err := r.RenderPart("c", "Bob")
	require.NoError(t, err)
	assert.Contains(t, string(page.Body), `id="candidate_name" name="candidate_name" type="text" value="Bob"`)
}

func TestRenderPart_Unknown(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	for _, id := range []string{"e", "", "ab", "../a"} {
		_, err := r.RenderPart(id, "")
		assert.True(t, errors.Is(err, domain.ErrNotFound), "part %q: got %v", id, err)
	}
}

func TestRenderPart_EscapesName(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	page, err := r.RenderPart("b", `<script>alert(1)</script>`)
	require.NoError(t, err)
	assert.NotContains(t, string(page.Body), "<script>alert(1)</script>")
}

func TestRenderSubmitted_ClearsDraft(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	page, err := r.RenderSubmitted(&domain.Receipt{
		ID:            17,
		CandidateName: "Alice",
		Part:          domain.PartB,
		CreatedAt:     time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
		Bytes:         2,
	})
	require.NoError(t, err)

	body := string(page.Body)
	assert.Contains(t, body, `data-clear-draft="B"`)
	assert.Contains(t, body, "Thank you, Alice")
	assert.Contains(t, body, "receipt #17")
	assert.Contains(t, body, "2026-02-03 04:05:06 UTC")
}

func TestRenderError(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	page := r.RenderError(http.StatusBadRequest, []string{"The answer is empty."}, "/part/c")

	assert.Equal(t, http.StatusBadRequest, page.Status)
	body := string(page.Body)
	assert.Contains(t, body, "Bad Request")
	assert.Contains(t, body, "The answer is empty.")
	assert.Contains(t, body, `href="/part/c"`)
	assert.True(t, strings.Contains(body, "draft is still saved"))
}
