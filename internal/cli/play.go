package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/factory"
	"github.com/mcoot/tictactoe-go/internal/tui"
)

// openScreen creates and initialises the terminal screen
var openScreen = func() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game (default command)",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	addPlayFlags(cmd)
	return cmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&cfg.AnimDelay, "anim-delay", cfg.AnimDelay, "Delay between win-line animation steps (env: TICTACTOE_ANIM_DELAY)")
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colors (env: NO_COLOR)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	app := factory.New(factoryConfig(logger))

	screen, err := openScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	session := tui.New(screen, app.GameController, app.BotService, app.Clock, tui.Config{
		BotStrategy: cfg.BotStrategy,
		AnimDelay:   cfg.AnimDelay,
		Color:       !cfg.NoColor,
	}, logger)

	err = session.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
