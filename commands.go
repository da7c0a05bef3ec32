package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-ai/internal"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var errNoMove = errors.New("board is terminal, no move available")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Unbeatable tic-tac-toe engine and game server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newMoveCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST and WebSocket servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			logger := initLogger(conf, os.Stdout)

			if err := app.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "path to the config file")

	return cmd
}

func newMoveCmd() *cobra.Command {
	var (
		markFlag string
		analyze  bool
	)

	cmd := &cobra.Command{
		Use:   "move <board>",
		Short: "Print the engine's move for a board such as XO--X----",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return err
			}

			mark, err := entity.ParseMark(markFlag)
			if err != nil {
				return err
			}

			return printMove(cmd.OutOrStdout(), board, mark, analyze)
		},
	}

	cmd.Flags().StringVarP(&markFlag, "mark", "m", string(entity.PlayerO), "mark to play for (X or O)")
	cmd.Flags().BoolVarP(&analyze, "analyze", "a", false, "print the score of every candidate cell")

	return cmd
}

func printMove(w io.Writer, board entity.Board, mark entity.Mark, analyze bool) error {
	scores := engine.Analyze(board, mark)

	cell, ok := engine.Pick(scores)
	if !ok {
		return fmt.Errorf("%w: %s", errNoMove, board.Outcome())
	}

	if analyze {
		for _, score := range scores {
			fmt.Fprintf(w, "cell %d (row %d, col %d): %d\n", score.Cell, score.Cell/3, score.Cell%3, score.Score)
		}
	}

	fmt.Fprintf(w, "%s plays %d\n", mark, cell)

	return nil
}

// initLogger builds the JSON logger at the configured level.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
