package apperror

import "errors"

var (
	ErrOutOfBounds         = errors.New("cell index is out of bounds")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrBoardNotInitialized = errors.New("board is not initialized")
)
