package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/memory-match/internal"
)

func newPlayCommand(env *environment) *cobra.Command {
	var (
		resumeID string
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = rand.Uint64()
			}

			return app.RunApp(env.logger, env.conf, app.Options{
				ResumeID: resumeID,
				Seed:     seed,
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&resumeID, "resume", "r", "", "resume a saved session by id")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed, random when 0")

	return cmd
}
