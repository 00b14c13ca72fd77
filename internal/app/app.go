// Package app wires dependencies and runs the interactive credential CLI.
package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RohithShyam024/credkit/internal/credential/usecase"
	"github.com/RohithShyam024/credkit/internal/pkg/clock"
	"github.com/RohithShyam024/credkit/internal/pkg/config"
	"github.com/RohithShyam024/credkit/internal/pkg/hash"
	"github.com/RohithShyam024/credkit/internal/pkg/instrument"
	"github.com/RohithShyam024/credkit/internal/pkg/validator"
)

// App owns the process lifecycle: configuration, telemetry, the database
// pool, and the credential module built on top of them.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	clock     clock.Clocker
	validator validator.Validator
	hasher    *hash.Provider

	// resources
	dbConn *pgxpool.Pool

	// modules
	credentials *usecase.Usecase
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	app := &App{ctx: ctx, cancel: cancel}
	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initModules()

	return app
}

// Run drives the interactive menu until the user exits, the input ends, or
// the store becomes unreachable. It returns the process exit code.
func (a *App) Run() int {
	return a.runLoop()
}

// Stop releases resources and flushes telemetry.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if a.dbConn != nil {
		a.dbConn.Close()
	}

	if a.ins != nil {
		if err := a.ins.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown instrumentation", "error", err)
		}
	}

	if a.config != nil {
		if err := a.config.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close config", "error", err)
		}
	}
}
