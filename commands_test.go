package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestMoveCommand(t *testing.T) {
	t.Run("Prints the engine's move", func(t *testing.T) {
		out, err := runCmd(t, "move", "XX--O----")

		require.NoError(t, err)
		assert.Equal(t, "O plays 2\n", out)
	})

	t.Run("Plays for X with analysis", func(t *testing.T) {
		out, err := runCmd(t, "move", "--mark", "x", "--analyze", "OO-XX-O--")

		require.NoError(t, err)
		assert.Contains(t, out, "cell 5 (row 1, col 2): 10\n")
		assert.Contains(t, out, "X plays 5\n")
	})

	t.Run("Terminal board", func(t *testing.T) {
		_, err := runCmd(t, "move", "XXXOO----")

		require.ErrorIs(t, err, errNoMove)
		assert.Contains(t, err.Error(), "x_wins")
	})

	t.Run("Invalid board", func(t *testing.T) {
		_, err := runCmd(t, "move", "XX")

		require.ErrorIs(t, err, entity.ErrInvalidBoard)
	})
}

func TestInitLogger(t *testing.T) {
	var out bytes.Buffer

	logger := initLogger(&config.Config{LogLevel: "warn"}, &out)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
