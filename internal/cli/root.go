package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/factory"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a bot in the terminal",
		Long: `tictactoe is a terminal game of tic-tac-toe. You play X, the bot plays O.

Run without a subcommand to start playing. The bot follows a fixed list of
rules unless --bot random is given.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flag("seed"); f != nil && f.Changed {
				cfg.Seeded = true
			}
			return cfg.Validate()
		},
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.BotStrategy, "bot", cfg.BotStrategy, "Bot strategy: heuristic, random (env: TICTACTOE_BOT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file (env: TICTACTOE_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: TICTACTOE_LOG_LEVEL)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random bot (env: TICTACTOE_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newMoveCmd())

	addPlayFlags(rootCmd)

	return rootCmd
}

// factoryConfig turns the CLI configuration into application wiring options
func factoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{Logger: logger}
	if cfg.Seeded {
		seed := cfg.Seed
		fc.Seed = &seed
	}
	return fc
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
