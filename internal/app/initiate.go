package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/RohithShyam024/credkit/internal/credential"
	"github.com/RohithShyam024/credkit/internal/pkg/clock"
	"github.com/RohithShyam024/credkit/internal/pkg/config"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
	"github.com/RohithShyam024/credkit/internal/pkg/instrument"
	"github.com/RohithShyam024/credkit/internal/pkg/validator"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to initialize config", "error", err, "path", path)
		os.Exit(1)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(a.ctx, &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.environment"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to initialize instrumentation", "error", err)
		os.Exit(1)
	}

	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()

	val, err := validator.NewV10Validator(a.config.GetString("credential.username_pattern"))
	if err != nil {
		slog.Error("failed to initialize validator", "error", err)
		os.Exit(1)
	}
	a.validator = val

	hasher, err := hash.NewProvider(hash.Config{Cost: a.config.GetInt("hash.cost")})
	if err != nil {
		if errors.Is(err, hash.ErrNoBackend) {
			slog.Error("no usable hashing backend", "error", err)
		} else {
			slog.Error("failed to initialize hash provider", "error", err)
		}
		os.Exit(1)
	}
	a.hasher = hasher

	slog.InfoContext(a.ctx, "hash provider ready", "algorithm", hasher.Primary(), "cost", hasher.Cost())
}

func (a *App) initDatabase() {
	poolCfg, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
	if err != nil {
		slog.Error("failed to parse database url", "error", err)
		os.Exit(1)
	}

	poolCfg.MaxConns = a.config.GetInt32("database.pool.max_conns")
	poolCfg.MinConns = a.config.GetInt32("database.pool.min_conns")
	poolCfg.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	poolCfg.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	poolCfg.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, poolCfg)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}

	// Startup is the only place that retries; store operations surface
	// unavailability to the caller instead.
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(a.ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "database ping failed, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("database is unreachable", "error", err)
		os.Exit(1)
	}

	a.dbConn = pool
}

func (a *App) initModules() {
	credentials, err := credential.New(a.ctx, credential.Dependency{
		DBConn:     a.dbConn,
		Config:     a.config,
		Instrument: a.ins,
		Hasher:     a.hasher,
		Clock:      a.clock,
		Validator:  a.validator,
	})
	if err != nil {
		slog.Error("failed to initialize credential module", "error", err)
		os.Exit(1)
	}

	a.credentials = credentials
}
