package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
)

type RemoveInput struct {
	Username string `validate:"required,username"`
}

// Remove deletes a credential. This is the administrative removal hook; the
// basic register/login flow never calls it.
func (s *Usecase) Remove(ctx context.Context, in RemoveInput) error {
	ctx, span := s.startSpan(ctx, "Remove")
	defer span.End()

	in.Username = s.normalizeUsername(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeleteCredential(ctx, in.Username)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		return goerror.NewBusiness("username not registered", goerror.CodeNotFound)

	case errors.Is(err, goerror.ErrUnavailable):
		slog.ErrorContext(ctx, "store unavailable during removal", "username", in.Username, "error", err)
		return err

	case err != nil:
		slog.ErrorContext(ctx, "failed to repo delete credential", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "credential removed", "username", in.Username)

	return nil
}
