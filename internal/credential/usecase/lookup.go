package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RohithShyam024/credkit/internal/credential/entity"
	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
)

// Lookup returns the stored credential for a username, without any password
// check. Callers inspecting records (audits, migration sweeps) go through
// here rather than touching the store directly.
func (s *Usecase) Lookup(ctx context.Context, username string) (*entity.Credential, error) {
	ctx, span := s.startSpan(ctx, "Lookup")
	defer span.End()

	username = s.normalizeUsername(username)

	cred, err := s.repoDB.GetCredential(ctx, username)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		return nil, goerror.NewBusiness("username not registered", goerror.CodeNotFound)

	case errors.Is(err, goerror.ErrUnavailable):
		return nil, err

	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get credential", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return cred, nil
}
