package cli

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/spf13/cobra"
)

func newReservationsCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List reservations",
	}
	cmd.AddCommand(newReservationsListCmd(r))
	return cmd
}

func newReservationsListCmd(r *runner) *cobra.Command {
	var guestID int64
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a guest's past reservations, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, "reservations list", nil, func(ctx context.Context, repos *repository.Repositories) (any, error) {
				return repos.Reservations.ListPastForGuest(ctx, guestID, limit)
			})
		},
	}

	cmd.Flags().Int64Var(&guestID, "guest-id", 0, "guest user id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of reservations (default 2000)")
	_ = cmd.MarkFlagRequired("guest-id")

	return cmd
}
