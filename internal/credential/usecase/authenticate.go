package usecase

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
)

type AuthenticateInput struct {
	Username string `validate:"required,username"`
	Password string `validate:"required"`
}

// Authenticate verifies the password against the stored record. Unknown
// username and wrong password are indistinguishable to the caller. A record
// whose algorithm is unrecognized fails closed as a server error, never as a
// successful login.
func (s *Usecase) Authenticate(ctx context.Context, in AuthenticateInput) error {
	ctx, span := s.startSpan(ctx, "Authenticate")
	defer span.End()

	in.Username = s.normalizeUsername(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	cred, err := s.repoDB.GetCredential(ctx, in.Username)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		slog.WarnContext(ctx, "credential not found", "username", in.Username)
		s.authCount.Add(ctx, 1, metric.WithAttributes(outcome("unknown_user")))
		return goerror.NewBusiness("invalid username or password", goerror.CodeUnauthorized)

	case errors.Is(err, goerror.ErrUnavailable):
		slog.ErrorContext(ctx, "store unavailable during authentication", "username", in.Username, "error", err)
		return err

	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get credential", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}

	verifyStart := s.clock.Now()

	ok, err := s.hasher.Verify(in.Password, cred.Record)
	if err != nil {
		slog.ErrorContext(ctx, "verification could not be attempted", "username", in.Username, "error", err)
		s.authCount.Add(ctx, 1, metric.WithAttributes(outcome("error")))
		return goerror.NewServer(err)
	}
	if !ok {
		slog.WarnContext(ctx, "password mismatch", "username", in.Username)
		s.authCount.Add(ctx, 1, metric.WithAttributes(outcome("mismatch")))
		return goerror.NewBusiness("invalid username or password", goerror.CodeUnauthorized)
	}

	s.authCount.Add(ctx, 1, metric.WithAttributes(outcome("success")))
	slog.InfoContext(ctx, "authentication succeeded",
		"username", in.Username,
		"algorithm", cred.Record.AlgorithmID,
		"verify_elapsed", s.clock.Now().Sub(verifyStart),
	)

	return nil
}
