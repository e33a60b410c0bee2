package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/factory"
	"github.com/mcoot/tictactoe-go/internal/model"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <board>",
		Short: "Show the bot's reply to a board",
		Long: `Apply one bot turn to a board and print the result.

The board is three rows separated by '/'. X is the human, O the bot and
'.', '_' or a space an empty cell.`,
		Example: `  tictactoe move "XX./.O./..."
  tictactoe move --bot random --seed 7 -o json "X../.../..."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := model.ParseBoard(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}

			logger, closer, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			app := factory.New(factoryConfig(logger))

			if status, _ := app.RulesService.Outcome(board); status != model.GameStatusInProgress {
				return fmt.Errorf("%w: %s", model.ErrGameComplete, status)
			}

			pos, err := app.BotService.SuggestMove(board, cfg.BotStrategy)
			if err != nil {
				return err
			}
			status, win := app.RulesService.Outcome(board)

			logger.Info("move suggested",
				slog.String("strategy", cfg.BotStrategy),
				slog.String("board", board.String()),
				slog.String("status", string(status)),
			)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(newMoveResult(cfg.BotStrategy, pos, board, status, win))
			return nil
		},
	}
}
