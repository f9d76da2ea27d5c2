package cli

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/spf13/cobra"
)

func newUsersCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up and add users",
	}
	cmd.AddCommand(newUsersGetCmd(r), newUsersAddCmd(r))
	return cmd
}

func newUsersGetCmd(r *runner) *cobra.Command {
	var email string
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a user by email or id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("email") && !cmd.Flags().Changed("id") {
				return errors.New("one of --email or --id is required")
			}

			return r.run(cmd, "users get", nil, func(ctx context.Context, repos *repository.Repositories) (any, error) {
				if cmd.Flags().Changed("email") {
					return repos.Users.GetByEmail(ctx, email)
				}
				return repos.Users.GetByID(ctx, id)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email (case-insensitive)")
	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.MarkFlagsMutuallyExclusive("email", "id")

	return cmd
}

func newUsersAddCmd(r *runner) *cobra.Command {
	var user model.NewUser

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, "users add", nil, func(ctx context.Context, repos *repository.Repositories) (any, error) {
				return repos.Users.Add(ctx, user)
			})
		},
	}

	cmd.Flags().StringVar(&user.Name, "name", "", "display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email address")
	cmd.Flags().StringVar(&user.Password, "password", "", "password hash")

	return cmd
}
