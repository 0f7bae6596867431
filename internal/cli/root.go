// Package cli provides the command-line interface of the game.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/memory-match/internal/config"
)

const defaultConfigPath = "./config.yml"

// environment is filled by the root command before any subcommand runs.
type environment struct {
	configPath string
	conf       *config.Config
	logger     *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	env := &environment{}

	rootCmd := &cobra.Command{
		Use:   "memory-match",
		Short: "Pair matching game for the terminal.",
		Long: `Pair matching game for the terminal. Reveal two tiles at a time and ` +
			`find every pair as fast as you can. Unfinished games can be resumed by session id.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(env.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			env.conf = conf
			env.logger = initLogger(conf, cmd.ErrOrStderr())

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env.configPath, "config", "c", defaultConfigPath, "path to the config file")

	rootCmd.AddCommand(
		newPlayCommand(env),
		newShuffleCommand(),
		newForgetCommand(env),
	)

	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}

	return 0
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
