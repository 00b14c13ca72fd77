package db

import (
	"context"

	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
)

// DeleteCredential removes a credential. Administrative use only; nothing in
// the register/login flow deletes.
func (s *DB) DeleteCredential(ctx context.Context, username string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCredential")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM credentials WHERE username = $1`, username)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
