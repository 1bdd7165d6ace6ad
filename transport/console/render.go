package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// cellWidth matches the width of a square label so filled and empty cells line up.
const cellWidth = 2

// RenderBoard fills the board template with the current square values.
func RenderBoard(board entity.Board) string {
	pairs := make([]string, 0, 2*len(entity.Squares))
	for _, square := range entity.Squares {
		value, ok := board.Get(square)
		if !ok {
			value = square
		}

		pairs = append(pairs, "{"+square+"}", fmt.Sprintf("%-*s", cellWidth, value))
	}

	return strings.NewReplacer(pairs...).Replace(boardTemplate)
}
