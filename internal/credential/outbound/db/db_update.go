package db

import (
	"context"

	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
)

// ReplaceHash atomically swaps the stored hash record for an existing
// credential. The username and creation timestamp are untouched.
func (s *DB) ReplaceHash(ctx context.Context, username string, rec hash.Record) (err error) {
	ctx, span := s.startSpan(ctx, "ReplaceHash")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`UPDATE credentials SET password_hash = $2 WHERE username = $1`,
		username, rec.Encode(),
	)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
