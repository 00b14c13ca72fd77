// Package usecase composes the hash provider and the credential store into
// the register, authenticate, change-password, and remove flows.
package usecase

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/RohithShyam024/credkit/internal/credential/entity"
	"github.com/RohithShyam024/credkit/internal/pkg/clock"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
	"github.com/RohithShyam024/credkit/internal/pkg/instrument"
	"github.com/RohithShyam024/credkit/internal/pkg/validator"
)

type repoDB interface {
	CreateCredential(ctx context.Context, username string, rec hash.Record) (time.Time, error)
	GetCredential(ctx context.Context, username string) (*entity.Credential, error)
	ReplaceHash(ctx context.Context, username string, rec hash.Record) error
	DeleteCredential(ctx context.Context, username string) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	hasher    *hash.Provider
	clock     clock.Clocker
	ins       instrument.Instrumentation

	// caseInsensitive folds usernames to lower case at this boundary. The
	// zero value keeps the default policy: case-sensitive.
	caseInsensitive bool

	registerCount metric.Int64Counter
	authCount     metric.Int64Counter
}

type Dependency struct {
	RepoDB          repoDB
	Validator       validator.Validator
	Hasher          *hash.Provider
	Clock           clock.Clocker
	Instrument      instrument.Instrumentation
	CaseInsensitive bool
}

func New(dep Dependency) (*Usecase, error) {
	meter := dep.Instrument.Meter("credential.usecase")

	registerCount, err := meter.Int64Counter("credential.register.count")
	if err != nil {
		return nil, err
	}
	authCount, err := meter.Int64Counter("credential.authenticate.count")
	if err != nil {
		return nil, err
	}

	return &Usecase{
		repoDB:          dep.RepoDB,
		validator:       dep.Validator,
		hasher:          dep.Hasher,
		clock:           dep.Clock,
		ins:             dep.Instrument,
		caseInsensitive: dep.CaseInsensitive,
		registerCount:   registerCount,
		authCount:       authCount,
	}, nil
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("credential.usecase").Start(ctx, name)
}

func (s *Usecase) normalizeUsername(username string) string {
	username = strings.TrimSpace(username)
	if s.caseInsensitive {
		username = strings.ToLower(username)
	}
	return username
}

func outcome(name string) attribute.KeyValue {
	return attribute.String("outcome", name)
}
