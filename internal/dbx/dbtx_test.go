package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func insert(ctx context.Context, q DBTX, v string) error {
	_, err := q.ExecContext(ctx, `INSERT INTO t (v) VALUES (?)`, v)
	return err
}

func count(ctx context.Context, q DBTX) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n)
	return n, err
}

func TestDBTX_DBAndTx(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)

	require.NoError(t, insert(ctx, db, "a"))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, insert(ctx, tx, "b"))
	n, err := count(ctx, tx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, tx.Rollback())

	n, err = count(ctx, db)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
