// Package submission implements the append-only Submission repository on
// the embedded SQLite store. Rows are never updated or deleted.
package submission

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/eulerq-candidate-test/internal/adapter/sqlite"
	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

const table = "submissions"

// timeLayout is fixed width so that lexicographic order of the stored TEXT
// equals chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// legacyLayouts are accepted when reading rows written by older tooling.
// Layouts without a zone were written in server local time.
var legacyLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05.999999"}

var columns = []string{"id", "candidate_name", "part", "content", "created_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Repo provides submission persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	tx  *sqlite.TxManager
	now func() time.Time
}

// New creates a new submission repository.
func New(db *sql.DB) *Repo {
	return &Repo{
		db:  db,
		tx:  sqlite.NewTxManager(db),
		now: time.Now,
	}
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

// Insert appends one submission row. The id and created_at are assigned by
// the store; created_at never goes below the latest stored timestamp, so the
// table stays ordered by insertion even if the wall clock steps back.
func (r *Repo) Insert(ctx context.Context, candidateName string, part domain.Part, content string) (*domain.Submission, error) {
	var out *domain.Submission

	err := r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q := sqlite.QuerierFromCtx(txCtx, r.db)

		createdAt, err := r.nextTimestamp(txCtx, q)
		if err != nil {
			return err
		}

		query, args, err := builder.
			Insert(table).
			Columns("candidate_name", "part", "content", "created_at").
			Values(candidateName, string(part), content, createdAt.Format(timeLayout)).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		var id int64
		if err := q.QueryRowContext(txCtx, query, args...).Scan(&id); err != nil {
			return err
		}

		out = &domain.Submission{
			ID:            id,
			CandidateName: candidateName,
			Part:          part,
			Content:       content,
			CreatedAt:     createdAt,
		}
		return nil
	})
	if err != nil {
		return nil, sqlite.MapError(err, "insert submission")
	}

	return out, nil
}

func (r *Repo) nextTimestamp(ctx context.Context, q sqlite.Querier) (time.Time, error) {
	now := r.now().UTC()

	query, args, err := builder.Select("MAX(created_at)").From(table).ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("build max created_at: %w", err)
	}

	var latest sql.NullString
	if err := q.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		return time.Time{}, err
	}
	if !latest.Valid {
		return now, nil
	}

	prev, err := parseTime(latest.String)
	if err != nil {
		return now, nil
	}
	if now.Before(prev) {
		return prev, nil
	}
	return now, nil
}

// ---------------------------------------------------------------------------
// Read
// ---------------------------------------------------------------------------

// ListAll returns every submission, most recent first.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	return r.list(ctx, "list submissions", selectSubmissions())
}

// ListByPart returns the submissions for one part, most recent first.
func (r *Repo) ListByPart(ctx context.Context, part domain.Part) ([]*domain.Submission, error) {
	return r.list(ctx, "list submissions by part",
		selectSubmissions().Where(sq.Eq{"part": string(part)}),
	)
}

// Latest returns the most recent submission of a candidate for a part.
// Returns domain.ErrNotFound if the candidate never submitted that part.
func (r *Repo) Latest(ctx context.Context, candidateName string, part domain.Part) (*domain.Submission, error) {
	query, args, err := selectSubmissions().
		Where(sq.Eq{"candidate_name": candidateName, "part": string(part)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest submission: %w", err)
	}

	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...)
	s, err := scanSubmission(row)
	if err != nil {
		return nil, sqlite.MapError(err, "latest submission")
	}
	return s, nil
}

// Count returns the number of stored submissions.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqlite.MapError(err, "count submissions")
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, op string, b sq.SelectBuilder) ([]*domain.Submission, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, op)
	}
	defer rows.Close()

	result := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, sqlite.MapError(err, op)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, op)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func selectSubmissions() sq.SelectBuilder {
	return builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*domain.Submission, error) {
	var (
		s         domain.Submission
		part      string
		createdAt string
	)
	if err := row.Scan(&s.ID, &s.CandidateName, &part, &s.Content, &createdAt); err != nil {
		return nil, err
	}

	ts, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("submission %d: %w", s.ID, err)
	}

	s.Part = domain.Part(part)
	s.CreatedAt = ts
	return &s, nil
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, v); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range legacyLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse created_at %q", v)
}
