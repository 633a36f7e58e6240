package testutil

import (
	"context"
	"database/sql"

	"github.com/napstack/napstack/internal/db"
)

// FailingWriteUoW fails the Nth write of a stats unit with Err. In
// RecordSession write 1 is the session log insert and write 2 is the stats
// upsert; Ship has only the stats upsert. Reads are not counted.
//
// It runs on the real SQLite unit of work, so a failure exercises the
// production rollback path.
type FailingWriteUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Writes counts the writes attempted in the last unit.
	Writes int
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.Writes = 0
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, uow: u})
	})
}

type failingWrites struct {
	db.DBTX
	uow *FailingWriteUoW
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.uow.Writes++
	if f.uow.Writes == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
