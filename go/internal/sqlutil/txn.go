package sqlutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrSerializationFailure marks a transaction aborted by Postgres because it
// conflicted with a concurrent one (SQLSTATE 40001). The transaction did not
// commit; retrying it is safe.
var ErrSerializationFailure = errors.New("serializable transaction aborted")

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories hold a DBTX so the same code runs inside or outside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Run executes fn inside a *sql.Tx.
// If fn returns an error the tx rolls back, else it commits.
func Run[T any](
	ctx context.Context,
	db *sql.DB,
	newRepos func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	return run(ctx, db, nil, newRepos, fn)
}

// RunSerializable is Run at SERIALIZABLE isolation. Roster mutations and
// trade completion use this so two trades moving the same player cannot
// both commit.
func RunSerializable[T any](
	ctx context.Context,
	db *sql.DB,
	newRepos func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	return run(ctx, db, &sql.TxOptions{Isolation: sql.LevelSerializable}, newRepos, fn)
}

func run[T any](
	ctx context.Context,
	db *sql.DB,
	opts *sql.TxOptions,
	newRepos func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	q := newRepos(tx)
	if err := fn(q); err != nil {
		_ = tx.Rollback()
		return translateSerializationFailure(err)
	}
	return translateSerializationFailure(tx.Commit())
}

// Serialization failures can surface from any statement or from the commit
// itself, so both paths run through here.
func translateSerializationFailure(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}
	return err
}
