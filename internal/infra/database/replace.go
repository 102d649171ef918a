package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// replaceTable atomically replaces the full contents of table: TRUNCATE
// followed by a COPY bulk insert, both inside one transaction. appendRows
// streams every row through add in column order. When rowCount is zero no
// database operation is performed at all, so a cycle whose fetches all
// failed never wipes a previously good snapshot. On any failure the
// transaction is rolled back in full and 0 is returned with the error;
// the table is never observable in a partially replaced state.
//
// Concurrent cycles against the same table are not guarded here. The
// scheduler owns single-flight per destination; a single cron engine runs
// jobs for a given table one at a time.
func replaceTable(
	ctx context.Context,
	db *sql.DB,
	log *logrus.Entry,
	table string,
	columns []string,
	rowCount int,
	appendRows func(add func(args ...any) error) error,
) (int64, error) {
	if rowCount == 0 {
		log.Warnf("[%s] no rows to insert, skipping replace", table)
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error beginning replace of %s: %w", table, err)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
		return 0, fmt.Errorf("error truncating %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, fmt.Errorf("error preparing bulk insert into %s: %w", table, err)
	}

	add := func(args ...any) error {
		_, execErr := stmt.ExecContext(ctx, args...)
		return execErr
	}
	if err := appendRows(add); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("error bulk inserting into %s: %w", table, err)
	}

	// Final Exec with no arguments flushes the COPY buffer.
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("error flushing bulk insert into %s: %w", table, err)
	}
	if err := stmt.Close(); err != nil {
		return 0, fmt.Errorf("error closing bulk insert into %s: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing replace of %s: %w", table, err)
	}
	committed = true

	log.Infof("Inserted %d records into %s", rowCount, table)
	return int64(rowCount), nil
}
