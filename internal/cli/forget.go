package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/memory-match/internal"
)

func newForgetCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "forget [session-id]",
		Short: "Delete a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sessionRepo, err := app.NewSessionRepository(ctx, env.logger, env.conf)
			if err != nil {
				return err
			}

			if err = sessionRepo.DeleteByID(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to forget session %s: %w", args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "session %s forgotten\n", args[0])
			return err
		},
	}
}
