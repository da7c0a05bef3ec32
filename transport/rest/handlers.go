package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// maxBodyBytes caps request bodies. Every request of the API fits in a few dozen bytes.
const maxBodyBytes = 4 << 10

type uGame interface {
	CreateGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	PlayTurn(ctx context.Context, gameID string, mark entity.Mark, cell int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	Abandon(ctx context.Context, gameID string) error
	Score(ctx context.Context) (*entity.Score, error)
	Suggest(board entity.Board, mark entity.Mark) (int, []engine.MoveScore, bool)
}

type handlers struct {
	logger *slog.Logger
	uGame  uGame
}

func newHandlers(logger *slog.Logger, uGame uGame) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

type moveRequest struct {
	Board string `json:"board"`
	Mark  string `json:"mark,omitempty"`
}

type moveResponse struct {
	Board  string             `json:"board"`
	Mark   entity.Mark        `json:"mark"`
	Move   *int               `json:"move"`
	Scores []engine.MoveScore `json:"scores,omitempty"`
}

type createGameRequest struct {
	Mode string `json:"mode"`
}

type turnRequest struct {
	Mark string `json:"mark"`
	Cell *int   `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write ping response", "error", err)
	}
}

func (that *handlers) suggestMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := that.decodeBody(w, r, &req); err != nil {
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		that.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mark := entity.BotMark
	if req.Mark != "" {
		if mark, err = entity.ParseMark(req.Mark); err != nil {
			that.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	resp := moveResponse{Board: board.String(), Mark: mark}
	if cell, scores, ok := that.uGame.Suggest(board, mark); ok {
		resp.Move = &cell
		resp.Scores = scores
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	req := createGameRequest{Mode: entity.ModeAI}
	if r.ContentLength != 0 {
		if err := that.decodeBody(w, r, &req); err != nil {
			return
		}
	}

	game, err := that.uGame.CreateGame(r.Context(), req.Mode)
	if err != nil {
		that.handleError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.handleError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := that.decodeBody(w, r, &req); err != nil {
		return
	}

	if req.Cell == nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mark := entity.HumanMark
	if req.Mark != "" {
		var err error
		if mark, err = entity.ParseMark(req.Mark); err != nil {
			that.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	game, err := that.uGame.PlayTurn(r.Context(), chi.URLParam(r, "id"), mark, *req.Cell)
	if err != nil {
		that.handleError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) restartGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.handleError(w, "restartGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.handleError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) getScore(w http.ResponseWriter, r *http.Request) {
	score, err := that.uGame.Score(r.Context())
	if err != nil {
		that.handleError(w, "getScore", err)
		return
	}

	that.writeJSON(w, http.StatusOK, score)
}

// handleError maps domain errors to status codes and logs the rest.
func (that *handlers) handleError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidCell),
		errors.Is(err, entity.ErrUnknownGameMode):
		that.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeError(w, http.StatusNotFound, apperror.ErrGameNotFound.Error())
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotBotGame),
		errors.Is(err, apperror.ErrGameConflict):
		that.writeError(w, http.StatusConflict, err.Error())
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads a JSON body of at most maxBodyBytes into v. On failure the
// error response is already written.
func (that *handlers) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		that.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return err
	}

	that.writeError(w, http.StatusBadRequest, "invalid request body")

	return err
}

func (that *handlers) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
