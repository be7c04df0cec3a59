package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

const Size = 3

// Grid is a 3x3 board. It is a value: the caller owns it and passes a pointer to MakeMove.
type Grid [Size][Size]Mark

type cell struct {
	row, col int
}

// rows, then columns, then diagonals
var lines = [8][Size]cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InitializeBoard - returns a new grid with every cell empty.
func InitializeBoard() Grid {
	var grid Grid

	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = Empty
		}
	}

	return grid
}

// ResetGame - returns a fresh empty grid for callers starting over.
func ResetGame() Grid {
	return InitializeBoard()
}

// MakeMove - places mark on an empty cell. It returns false if the cell is occupied.
// Turn order and finished games are not checked.
func MakeMove(grid *Grid, row, col int, mark Mark) (bool, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if grid[row][col] != Empty {
		return false, nil
	}

	grid[row][col] = mark

	return true, nil
}

// CheckWinner - returns the mark filling the first complete line, or Empty if there is none.
// A full grid without a winner is not reported; see IsFull.
func CheckWinner(grid Grid) Mark {
	for _, line := range lines {
		a, b, c := grid[line[0].row][line[0].col], grid[line[1].row][line[1].col], grid[line[2].row][line[2].col]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// IsFull - reports whether no empty cell is left.
func IsFull(grid Grid) bool {
	for _, row := range grid {
		for _, mark := range row {
			if mark == Empty {
				return false
			}
		}
	}

	return true
}

func (that Grid) String() string {
	rows := make([]string, 0, Size)
	for _, row := range that {
		rows = append(rows, fmt.Sprintf("%s|%s|%s", row[0], row[1], row[2]))
	}

	return strings.Join(rows, "\n")
}
