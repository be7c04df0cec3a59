package board

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMark(t *testing.T) {
	tests := []struct {
		input    string
		expected Mark
	}{
		{input: "X", expected: X},
		{input: "x", expected: X},
		{input: "O", expected: O},
		{input: "o", expected: O},
		{input: " ", expected: Empty},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			mark, err := ParseMark(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, mark)
		})
	}

	t.Run("Unknown mark", func(t *testing.T) {
		_, err := ParseMark("Z")

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGrid_MarshalJSON(t *testing.T) {
	// Given: a board with both marks on it
	grid := InitializeBoard()
	grid[0][0] = X
	grid[2][2] = O

	// When: the board is encoded to JSON
	data, err := json.Marshal(grid)
	require.NoError(t, err)

	// Then: marks should be written as their symbols
	assert.JSONEq(t, `[["X"," "," "],[" "," "," "],[" "," ","O"]]`, string(data))

	// Then: decoding should restore the same board
	var decoded Grid
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, grid, decoded)
}
