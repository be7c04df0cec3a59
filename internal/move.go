package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/board"
)

// Move is a scripted placement in the form MARK:ROW:COL.
type Move struct {
	Mark board.Mark
	Row  int
	Col  int
}

// ParseMove - converts "X:0:2" into a Move. Range is checked by board.MakeMove, not here.
func ParseMove(raw string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("%w: %q, expected MARK:ROW:COL", apperror.ErrInvalidMove, raw)
	}

	mark, err := board.ParseMark(parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if mark == board.Empty {
		return Move{}, fmt.Errorf("%w: %q has no player mark", apperror.ErrInvalidMove, raw)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad row in %q", apperror.ErrInvalidMove, raw)
	}

	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad col in %q", apperror.ErrInvalidMove, raw)
	}

	return Move{Mark: mark, Row: row, Col: col}, nil
}
