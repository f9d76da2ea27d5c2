// Package cli exposes the repositories as cobra commands.
//
// Every command opens the application through an Opener, runs one
// repository operation inside a New Relic transaction (a no-op when APM is
// disabled) and prints the result as JSON on stdout.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/deppfellow/lightbnb/internal/app"
	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Env is what a command needs to run.
type Env struct {
	Repos         *repository.Repositories
	Logger        zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	Environment   string
	Ping          func(ctx context.Context) error
	Close         func() error
}

// Opener builds an Env. Commands call it once, lazily, so --help never
// touches the database.
type Opener func(ctx context.Context) (*Env, error)

// OpenApp is the production Opener: config from the environment, a pgx
// pool and repositories bound to it.
func OpenApp(ctx context.Context) (*Env, error) {
	a, err := app.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	return &Env{
		Repos:         a.Repos,
		Logger:        *a.Logger,
		LoggerService: a.LoggerService,
		Environment:   a.Config.Primary.Env,
		Ping:          a.DB.Ping,
		Close:         a.Shutdown,
	}, nil
}

// NewRootCmd builds the lightbnb command tree.
func NewRootCmd(open Opener, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "lightbnb",
		Short:         "Query and update the LightBnB database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	r := &runner{open: open}
	root.AddCommand(
		newPropertiesCmd(r),
		newUsersCmd(r),
		newReservationsCmd(r),
		newHealthCmd(r),
	)

	return root
}

type runner struct {
	open Opener
}

// run executes op as a named transaction and writes its result to the
// command's output. fields are added to the command's log lines.
func (r *runner) run(cmd *cobra.Command, name string, fields map[string]any, op func(ctx context.Context, repos *repository.Repositories) (any, error)) (err error) {
	env, err := r.open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := env.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	ctx := cmd.Context()
	logger := env.Logger.With().Str("command", name).Fields(fields).Logger()

	if nrApp := env.LoggerService.GetApplication(); nrApp != nil {
		txn := nrApp.StartTransaction(name)
		defer txn.End()

		// nrpgx5 reads the transaction from the context to attach segments.
		ctx = newrelic.NewContext(ctx, txn)
		logger = loggerPkg.WithTraceContext(logger, txn)

		defer func() {
			if err != nil {
				txn.NoticeError(err)
			}
		}()
	}

	result, err := op(ctx, env.Repos)
	if err != nil {
		logger.Debug().Err(err).Msg("command failed")
		return err
	}

	logger.Debug().Msg("command finished")
	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
