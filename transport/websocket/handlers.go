package websocket

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var errGameIDRequired = errors.New("game_id is required")

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, action string, req RequestPayload) error {
	mode := req.Mode
	if mode == "" {
		mode = entity.ModeAI
	}

	game, err := that.uGame.CreateGame(ctx, mode)
	if err != nil {
		return that.sendFailure(conn, action, err)
	}

	return that.sendMessage(conn, action, ResponsePayload{Game: game})
}

func (that *Server) handleGetGame(ctx context.Context, conn *websocket.Conn, action string, req RequestPayload) error {
	if req.GameID == "" {
		return that.sendFailure(conn, action, errGameIDRequired)
	}

	game, err := that.uGame.GetGame(ctx, req.GameID)
	if err != nil {
		return that.sendFailure(conn, action, err)
	}

	return that.sendMessage(conn, action, ResponsePayload{Game: game})
}

// handleGameTurn sends the human move, then the engine's answer after the think delay.
func (that *Server) handleGameTurn(ctx context.Context, conn *websocket.Conn, action string, req RequestPayload) error {
	if req.GameID == "" {
		return that.sendFailure(conn, action, errGameIDRequired)
	}

	if req.Cell == nil {
		return that.sendFailure(conn, action, entity.ErrInvalidCell)
	}

	mark := entity.HumanMark
	if req.Mark != "" {
		var err error
		if mark, err = entity.ParseMark(req.Mark); err != nil {
			return that.sendFailure(conn, action, err)
		}
	}

	game, err := that.uGame.MakeTurn(ctx, req.GameID, mark, *req.Cell)
	if err != nil {
		return that.sendFailure(conn, action, err)
	}

	if err = that.sendMessage(conn, action, ResponsePayload{Game: game}); err != nil {
		return err
	}

	if !game.IsBotTurn() {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(that.thinkDelay):
	}

	game, err = that.uGame.BotTurn(ctx, req.GameID)
	if err != nil {
		return that.sendFailure(conn, action, err)
	}

	return that.sendMessage(conn, action, ResponsePayload{Game: game})
}

func (that *Server) handleRestart(ctx context.Context, conn *websocket.Conn, action string, req RequestPayload) error {
	if req.GameID == "" {
		return that.sendFailure(conn, action, errGameIDRequired)
	}

	game, err := that.uGame.Restart(ctx, req.GameID)
	if err != nil {
		return that.sendFailure(conn, action, err)
	}

	return that.sendMessage(conn, action, ResponsePayload{Game: game})
}

// sendFailure reports err to the client. Unexpected errors are logged and hidden.
func (that *Server) sendFailure(conn *websocket.Conn, action string, err error) error {
	for _, known := range []error{
		errGameIDRequired,
		entity.ErrInvalidCell,
		entity.ErrInvalidMark,
		entity.ErrUnknownGameMode,
		apperror.ErrGameNotFound,
		apperror.ErrNotYourTurn,
		apperror.ErrCellOccupied,
		apperror.ErrGameFinished,
		apperror.ErrNotBotGame,
		apperror.ErrGameConflict,
	} {
		if errors.Is(err, known) {
			return that.sendError(conn, action, known.Error())
		}
	}

	that.logger.Error("action failed", "action", action, "error", err)

	return that.sendError(conn, action, "internal error")
}
