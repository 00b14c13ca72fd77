package db

import (
	"context"
	"time"

	"github.com/RohithShyam024/credkit/internal/pkg/hash"
)

// CreateCredential inserts a credential if the username is absent and returns
// the creation timestamp assigned by the database. A concurrent duplicate
// loses against the primary key and surfaces goerror.ErrConflict; the winning
// row is never overwritten.
func (s *DB) CreateCredential(ctx context.Context, username string, rec hash.Record) (_ time.Time, err error) {
	ctx, span := s.startSpan(ctx, "CreateCredential")
	defer func() { s.endSpan(span, err) }()

	var createdAt time.Time
	err = s.conn.QueryRow(ctx,
		`INSERT INTO credentials (username, password_hash) VALUES ($1, $2) RETURNING created_at`,
		username, rec.Encode(),
	).Scan(&createdAt)
	if err != nil {
		return time.Time{}, s.mapError(err)
	}

	return createdAt, nil
}
