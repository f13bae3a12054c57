package web

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
	"github.com/heartmarshall/eulerq-candidate-test/internal/service/submission"
	"github.com/heartmarshall/eulerq-candidate-test/pkg/ctxutil"
)

// maxMultipartMemory is how much of a multipart form is kept in memory;
// the rest spills to temporary files.
const maxMultipartMemory = 1 << 20

// candidateCookieTTL keeps the remembered name for the length of a session
// of interviews.
const candidateCookieTTL = 7 * 24 * time.Hour

// submitter defines the minimal interface needed by Handler.
type submitter interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*domain.Receipt, error)
}

// Handler serves the candidate-facing pages.
type Handler struct {
	svc        submitter
	pages      *Renderer
	cookieName string
	log        *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc submitter, pages *Renderer, cookieName string, logger *slog.Logger) *Handler {
	return &Handler{
		svc:        svc,
		pages:      pages,
		cookieName: cookieName,
		log:        logger.With("handler", "web"),
	}
}

// submitRequest is the typed form of POST /submit.
type submitRequest struct {
	CandidateName string
	Part          string
	Content       string
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	name, _ := ctxutil.CandidateFromCtx(r.Context())
	page, err := h.pages.RenderHome(name)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}
	page.Write(w)
}

// Start handles POST /start: it remembers the candidate name in a cookie
// and redirects to the part list. A blank name forgets the cookie.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.handleError(w, r, err, "")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("candidate_name"))
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    url.QueryEscape(name),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(candidateCookieTTL.Seconds()),
	}
	if name == "" {
		cookie.Value = ""
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Part handles GET /part/{id}.
func (h *Handler) Part(w http.ResponseWriter, r *http.Request) {
	name, _ := ctxutil.CandidateFromCtx(r.Context())
	page, err := h.pages.RenderPart(r.PathValue("id"), name)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}
	page.Write(w)
}

// Submit handles POST /submit.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeSubmit(r)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	receipt, err := h.svc.Submit(r.Context(), submission.SubmitInput{
		CandidateName: req.CandidateName,
		Part:          req.Part,
		Content:       req.Content,
	})
	if err != nil {
		h.handleError(w, r, err, backLink(req.Part))
		return
	}

	page, err := h.pages.RenderSubmitted(receipt)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}
	page.Write(w)
}

// TooManySubmissions renders the 429 page for throttled submits. The
// rejected body is still read so the page can link back to the part.
func (h *Handler) TooManySubmissions(w http.ResponseWriter, r *http.Request) {
	var backTo string
	if parseForm(r) == nil {
		backTo = backLink(r.PostFormValue("part"))
	}
	h.log.WarnContext(r.Context(), "submission throttled")
	h.pages.RenderError(http.StatusTooManyRequests,
		[]string{"Too many submissions from this address. Please wait a moment and submit again."}, backTo).Write(w)
}

// NotFound renders the generic 404 page for unrouted paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.pages.RenderError(http.StatusNotFound, []string{"There is no page at " + r.URL.Path + "."}, "").Write(w)
}

// decodeSubmit parses the form body. An absent candidate_name field falls
// back to the remembered cookie; a present but blank one is kept blank.
func (h *Handler) decodeSubmit(r *http.Request) (submitRequest, error) {
	if err := parseForm(r); err != nil {
		return submitRequest{}, err
	}

	req := submitRequest{
		Part:    r.PostFormValue("part"),
		Content: r.PostFormValue("content"),
	}
	if names, ok := r.PostForm["candidate_name"]; ok && len(names) > 0 {
		req.CandidateName = names[0]
	} else if name, ok := ctxutil.CandidateFromCtx(r.Context()); ok {
		req.CandidateName = name
	}
	return req, nil
}

// errBadForm marks a body that could not be parsed as a form.
var errBadForm = errors.New("malformed form body")

func parseForm(r *http.Request) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMultipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}

	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return mbe
	}
	return errors.Join(errBadForm, err)
}

func backLink(rawPart string) string {
	part, ok := domain.ParsePart(rawPart)
	if !ok {
		return ""
	}
	return "/part/" + part.Lower()
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	var (
		ve  *domain.ValidationError
		mbe *http.MaxBytesError
	)

	switch {
	case errors.As(err, &ve):
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			msgs = append(msgs, validationMessage(fe))
		}
		h.pages.RenderError(http.StatusBadRequest, msgs, backTo).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		h.pages.RenderError(http.StatusNotFound, []string{"This part does not exist."}, "").Write(w)
	case errors.As(err, &mbe):
		h.log.WarnContext(r.Context(), "request body too large", slog.Int64("limit", mbe.Limit))
		h.pages.RenderError(http.StatusRequestEntityTooLarge,
			[]string{"The answer is larger than this server accepts."}, backTo).Write(w)
	case errors.Is(err, errBadForm):
		h.pages.RenderError(http.StatusBadRequest, []string{"The form could not be read."}, backTo).Write(w)
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		msg := "Something went wrong on our side."
		if errors.Is(err, domain.ErrStorageUnavailable) {
			msg = "Your answer could not be saved right now. Please try again."
		}
		h.pages.RenderError(http.StatusInternalServerError, []string{msg}, backTo).Write(w)
	}
}

func validationMessage(fe domain.FieldError) string {
	switch fe.Code {
	case domain.CodeInvalidPart:
		return "Unknown part. Answers can only be submitted for parts A, B, C and D."
	case domain.CodeEmptyAnswer:
		return "The answer is empty. Please write something before submitting."
	default:
		return fe.Field + ": " + fe.Message
	}
}
