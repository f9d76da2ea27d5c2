package cli

import (
	"errors"

	"github.com/deppfellow/lightbnb/internal/app"
	"github.com/spf13/cobra"
)

func newHealthCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the database is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			env, err := r.open(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := env.Close(); closeErr != nil && err == nil {
					err = closeErr
				}
			}()

			report := app.CheckHealth(cmd.Context(), env.Environment, env.Ping, env.Logger, env.LoggerService.GetApplication())
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Healthy() {
				return errors.New("database is unhealthy")
			}
			return nil
		},
	}
}
