package service

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	resultMoved    = "moved"
	resultTerminal = "terminal"
)

var (
	botDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_bot_decisions_total",
		Help: "Total number of engine decisions by result",
	}, []string{"result"})

	botDecisionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_bot_decision_duration_seconds",
		Help:    "Duration of a full minimax search",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)

type BotService interface {
	// MakeTurn plays the engine's move for the side to move in game.
	MakeTurn(game *entity.Game) error
	// Suggest returns the engine's move for mark without touching any game.
	Suggest(board entity.Board, mark entity.Mark) (int, []engine.MoveScore, bool)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	cell, _, ok := that.Suggest(game.Board, game.Turn)
	if !ok {
		return apperror.ErrNoAvailableMoves
	}

	if err := game.MakeTurn(game.Turn, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *botService) Suggest(board entity.Board, mark entity.Mark) (int, []engine.MoveScore, bool) {
	start := time.Now()
	scores := engine.Analyze(board, mark)
	botDecisionDuration.Observe(time.Since(start).Seconds())

	if len(scores) == 0 {
		botDecisionsTotal.WithLabelValues(resultTerminal).Inc()
		return 0, nil, false
	}

	cell, _ := engine.Pick(scores)
	botDecisionsTotal.WithLabelValues(resultMoved).Inc()

	return cell, scores, true
}
