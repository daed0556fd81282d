package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// WithTransaction begins a transaction, runs fn and commits when fn returns
// nil. Any error or panic from fn rolls back; the transaction is always ended
// before returning so its connection goes back to the pool.
func WithTransaction(ctx context.Context, db DB, fn func(pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
