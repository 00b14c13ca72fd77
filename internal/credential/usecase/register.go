package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
)

type RegisterInput struct {
	Username string `validate:"required,username"`
	Password string `validate:"required,max=72"`
}

type RegisterOutput struct {
	CreatedAt time.Time
}

// Register hashes the password and creates the credential if the username is
// absent. Validation happens before any hashing or storage work, so a
// rejected input has no side effects.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = s.normalizeUsername(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	rec, err := s.hasher.Hash(in.Password)
	if errors.Is(err, hash.ErrEmptyPlaintext) {
		return nil, goerror.NewInvalidInput(err)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	createdAt, err := s.repoDB.CreateCredential(ctx, in.Username, rec)
	switch {
	case errors.Is(err, goerror.ErrConflict):
		slog.WarnContext(ctx, "username already registered", "username", in.Username)
		s.registerCount.Add(ctx, 1, metric.WithAttributes(outcome("conflict")))
		return nil, goerror.NewBusiness("username already exists", goerror.CodeConflict)

	case errors.Is(err, goerror.ErrUnavailable):
		slog.ErrorContext(ctx, "store unavailable during registration", "username", in.Username, "error", err)
		return nil, err

	case err != nil:
		slog.ErrorContext(ctx, "failed to repo create credential", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.registerCount.Add(ctx, 1, metric.WithAttributes(outcome("created")))

	return &RegisterOutput{CreatedAt: createdAt}, nil
}
