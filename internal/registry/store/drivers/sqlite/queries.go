package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/relayops/clientreg/internal/registry/domain"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the same query set serves
// plain and transactional access.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries { return &queries{db: db} }

const listClientsSQL = `
SELECT id, name, download_link, created_at, updated_at
FROM clients
ORDER BY rowid
`

// listClients returns clients ordered by rowid, i.e. insertion order.
func (q *queries) listClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := q.db.QueryContext(ctx, listClientsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.DownloadLink, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const getClientSQL = `
SELECT id, name, download_link, created_at, updated_at
FROM clients
WHERE id = ?
`

func (q *queries) getClient(ctx context.Context, key string) (domain.Client, error) {
	var c domain.Client
	err := q.db.QueryRowContext(ctx, getClientSQL, key).
		Scan(&c.ID, &c.Name, &c.DownloadLink, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const clientExistsSQL = `SELECT EXISTS(SELECT 1 FROM clients WHERE id = ?)`

func (q *queries) clientExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, clientExistsSQL, key).Scan(&exists)
	return exists, err
}

const putClientSQL = `
INSERT INTO clients (id, name, download_link, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	download_link = excluded.download_link,
	updated_at = excluded.updated_at
`

// putClient inserts or overwrites unconditionally. created_at is preserved on
// conflict because the upsert never touches it.
func (q *queries) putClient(ctx context.Context, c domain.Client, now time.Time) error {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	_, err := q.db.ExecContext(ctx, putClientSQL, c.ID, c.Name, c.DownloadLink, createdAt, now)
	return err
}

const deleteClientSQL = `DELETE FROM clients WHERE id = ?`

func (q *queries) deleteClient(ctx context.Context, key string) (bool, error) {
	res, err := q.db.ExecContext(ctx, deleteClientSQL, key)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
