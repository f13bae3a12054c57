package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

// MapError converts database/sql and SQLite driver errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Anything that is not a not-found or constraint problem is a storage failure.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var sqlErr *sqlitedrv.Error
	if errors.As(err, &sqlErr) {
		// Low byte is the primary result code; extended codes refine it.
		if sqlErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return fmt.Errorf("%s: %w", op, domain.ErrValidation)
		}
	}

	return domain.NewStorageError(op, err)
}
