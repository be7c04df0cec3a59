package apperror

import "errors"

var (
	ErrOutOfRange  = errors.New("cell is out of range")
	ErrInvalidMark = errors.New("invalid mark")
	ErrInvalidMove = errors.New("invalid move")
)
