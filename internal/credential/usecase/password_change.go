package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
)

type ChangePasswordInput struct {
	Username    string `validate:"required,username"`
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,max=72"`
}

// ChangePassword verifies the current password, then swaps in a record for
// the new one. The replacement is a single atomic update; the credential's
// creation timestamp is untouched.
func (s *Usecase) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	ctx, span := s.startSpan(ctx, "ChangePassword")
	defer span.End()

	in.Username = s.normalizeUsername(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.Authenticate(ctx, AuthenticateInput{Username: in.Username, Password: in.OldPassword}); err != nil {
		return err
	}

	rec, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}

	err = s.repoDB.ReplaceHash(ctx, in.Username, rec)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		// Removed between the verify and the swap.
		return goerror.NewBusiness("username not registered", goerror.CodeNotFound)

	case errors.Is(err, goerror.ErrUnavailable):
		slog.ErrorContext(ctx, "store unavailable during password change", "username", in.Username, "error", err)
		return err

	case err != nil:
		slog.ErrorContext(ctx, "failed to repo replace hash", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
