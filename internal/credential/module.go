// Package credential wires the credential module: the pgx-backed store and
// the usecase layer on top of it.
package credential

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RohithShyam024/credkit/internal/credential/outbound/db"
	"github.com/RohithShyam024/credkit/internal/credential/usecase"
	"github.com/RohithShyam024/credkit/internal/pkg/clock"
	"github.com/RohithShyam024/credkit/internal/pkg/config"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
	"github.com/RohithShyam024/credkit/internal/pkg/instrument"
	"github.com/RohithShyam024/credkit/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Hasher     *hash.Provider             `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New builds the credential module and makes sure its schema exists.
func New(ctx context.Context, dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	store := db.NewDB(dep.DBConn, dep.Instrument)
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	return usecase.New(usecase.Dependency{
		RepoDB:          store,
		Validator:       dep.Validator,
		Hasher:          dep.Hasher,
		Clock:           dep.Clock,
		Instrument:      dep.Instrument,
		CaseInsensitive: dep.Config.GetBool("credential.case_insensitive"),
	})
}
