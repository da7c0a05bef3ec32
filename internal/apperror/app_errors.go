package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameNotFound     = errors.New("game not found")
	ErrNotBotGame       = errors.New("game is not played against the bot")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameConflict     = errors.New("game was changed by another request")
)
