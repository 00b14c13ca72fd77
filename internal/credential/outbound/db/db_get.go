package db

import (
	"context"
	"fmt"

	"github.com/RohithShyam024/credkit/internal/credential/entity"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
)

// GetCredential is a pure read of one credential by username.
func (s *DB) GetCredential(ctx context.Context, username string) (_ *entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "GetCredential")
	defer func() { s.endSpan(span, err) }()

	var (
		cred    entity.Credential
		encoded string
	)
	err = s.conn.QueryRow(ctx,
		`SELECT username, password_hash, created_at FROM credentials WHERE username = $1`,
		username,
	).Scan(&cred.Username, &encoded, &cred.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	cred.Record, err = hash.ParseRecord(encoded)
	if err != nil {
		return nil, fmt.Errorf("stored hash for %q is corrupt: %w", username, err)
	}

	return &cred, nil
}
