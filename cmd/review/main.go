// Command review prints stored submissions for the interviewer.
// It opens the same SQLite file as the server read-only and fails if the
// file does not exist.
//
// Flags:
//
//	--part    only show answers to this part (A-D)
//	--latest  show the most recent answer of this candidate (requires --part)
//	--json    print JSON instead of a table
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/eulerq-candidate-test/internal/adapter/sqlite"
	submissionrepo "github.com/heartmarshall/eulerq-candidate-test/internal/adapter/sqlite/submission"
	"github.com/heartmarshall/eulerq-candidate-test/internal/app"
	"github.com/heartmarshall/eulerq-candidate-test/internal/config"
	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
	"github.com/heartmarshall/eulerq-candidate-test/internal/service/submission"
)

// previewLen is how much of an answer the table shows per row.
const previewLen = 60

var errUsage = errors.New("usage")

type options struct {
	part   string
	latest string
	json   bool
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "review: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLoggerTo(stderr, cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sqlite.OpenReadOnly(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := submission.NewService(logger, submissionrepo.New(db), noopRecorder{}, cfg.Assessment.AnonymousName)

	var subs []*domain.Submission
	if opts.latest != "" {
		s, err := svc.Latest(ctx, submission.LatestInput{CandidateName: opts.latest, Part: opts.part})
		if err != nil {
			return err
		}
		subs = []*domain.Submission{s}
	} else {
		subs, err = svc.List(ctx, submission.ListInput{Part: opts.part})
		if err != nil {
			return err
		}
	}

	if opts.json {
		return writeJSON(stdout, subs)
	}
	return writeTable(stdout, subs)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.part, "part", "", "only show answers to this part (A-D)")
	fs.StringVar(&opts.latest, "latest", "", "show the most recent answer of this candidate (requires --part)")
	fs.BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	if err := fs.Parse(args); err != nil {
		return opts, errUsage
	}
	if opts.latest != "" && opts.part == "" {
		fmt.Fprintln(stderr, "review: --latest requires --part")
		return opts, errUsage
	}
	return opts, nil
}

type jsonSubmission struct {
	ID            int64     `json:"id"`
	CandidateName string    `json:"candidateName"`
	Part          string    `json:"part"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
}

func writeJSON(w io.Writer, subs []*domain.Submission) error {
	out := make([]jsonSubmission, 0, len(subs))
	for _, s := range subs {
		out = append(out, jsonSubmission{
			ID:            s.ID,
			CandidateName: s.CandidateName,
			Part:          s.Part.String(),
			Content:       s.Content,
			CreatedAt:     s.CreatedAt,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, subs []*domain.Submission) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tCANDIDATE\tPART\tANSWER")
	for _, s := range subs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.CandidateName,
			s.Part,
			preview(s.Content),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d submission(s)\n", len(subs))
	return err
}

// preview flattens an answer to one line and cuts it to previewLen runes.
func preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	r := []rune(flat)
	if len(r) <= previewLen {
		return flat
	}
	return string(r[:previewLen-1]) + "…"
}

// noopRecorder discards submission metrics; review never submits.
type noopRecorder struct{}

func (noopRecorder) SubmissionStored(domain.Part) {}
func (noopRecorder) SubmissionRejected(string)    {}
func (noopRecorder) SubmissionFailed()            {}

