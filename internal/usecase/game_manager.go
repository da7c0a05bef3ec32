package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, id string, change func(game *entity.Game) error) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type scoreService interface {
	GetScore(ctx context.Context) (*entity.Score, error)
}

type botService interface {
	MakeTurn(game *entity.Game) error
	Suggest(board entity.Board, mark entity.Mark) (int, []engine.MoveScore, bool)
}

type GameManager struct {
	logger *slog.Logger

	gameService  gameService
	scoreService scoreService
	botService   botService
}

func NewGameManager(logger *slog.Logger, gameService gameService, scoreService scoreService, botService botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameService:  gameService,
		scoreService: scoreService,
		botService:   botService,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, mode string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "mode", game.Mode)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays mark at cell. Against the bot only the human mark is accepted.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, mark entity.Mark, cell int) (*entity.Game, error) {
	game, err := that.gameService.UpdateGame(ctx, gameID, func(game *entity.Game) error {
		if game.IsWithBot() && mark != entity.HumanMark {
			return apperror.ErrNotYourTurn
		}

		return game.MakeTurn(mark, cell)
	})
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	that.logFinished(game)

	return game, nil
}

// BotTurn lets the engine answer in an AI game.
func (that *GameManager) BotTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.UpdateGame(ctx, gameID, that.botTurn)
	if err != nil {
		return game, fmt.Errorf("failed to make bot turn: %w", err)
	}

	that.logFinished(game)

	return game, nil
}

// PlayTurn is MakeTurn followed by the engine's answer when one is due.
func (that *GameManager) PlayTurn(ctx context.Context, gameID string, mark entity.Mark, cell int) (*entity.Game, error) {
	game, err := that.MakeTurn(ctx, gameID, mark, cell)
	if err != nil {
		return game, err
	}

	if !game.IsBotTurn() {
		return game, nil
	}

	return that.BotTurn(ctx, gameID)
}

func (that *GameManager) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.UpdateGame(ctx, gameID, func(game *entity.Game) error {
		game.Restart()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	that.logger.Info("game restarted", "gameID", game.ID)

	return game, nil
}

// Abandon drops a game without counting it on the scoreboard.
func (that *GameManager) Abandon(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", gameID)

	return nil
}

func (that *GameManager) Score(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreService.GetScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

// Suggest asks the engine for mark's move on a board that belongs to no game.
func (that *GameManager) Suggest(board entity.Board, mark entity.Mark) (int, []engine.MoveScore, bool) {
	return that.botService.Suggest(board, mark)
}

func (that *GameManager) botTurn(game *entity.Game) error {
	if !game.IsWithBot() {
		return apperror.ErrNotBotGame
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Turn != entity.BotMark {
		return apperror.ErrNotYourTurn
	}

	return that.botService.MakeTurn(game)
}

// logFinished reports a game that the last turn finished. The storage layer
// counts the result in the same write.
func (that *GameManager) logFinished(game *entity.Game) {
	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}
}
