package entity

// Squares lists every square label in board order: rows 1-3, columns a-c.
var Squares = [9]string{
	"1a", "1b", "1c",
	"2a", "2b", "2c",
	"3a", "3b", "3c",
}

// WinCombos are the lines that end the game when a single player owns all three squares.
var WinCombos = [8][3]string{
	// rows
	{"1a", "1b", "1c"},
	{"2a", "2b", "2c"},
	{"3a", "3b", "3c"},
	// columns
	{"1a", "2a", "3a"},
	{"1b", "2b", "3b"},
	{"1c", "2c", "3c"},
	// diagonals
	{"1a", "2b", "3c"},
	{"1c", "2b", "3a"},
}

// Board maps a square label to its value. An empty square holds its own label,
// a filled one holds a player mark.
type Board map[string]string

// NewBoard returns a board where every square is empty.
func NewBoard() Board {
	board := make(Board, len(Squares))
	for _, square := range Squares {
		board[square] = square
	}

	return board
}

// Get returns the value at square and whether the square exists.
func (that Board) Get(square string) (string, bool) {
	value, ok := that[square]
	return value, ok
}

// Set writes mark into square. Callers validate the move first.
func (that Board) Set(square, mark string) {
	that[square] = mark
}

func (that Board) IsEmpty(square string) bool {
	value, ok := that[square]
	return ok && value == square
}

func (that Board) IsFull() bool {
	for _, square := range Squares {
		if !IsMark(that[square]) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the board.
func (that Board) Clone() Board {
	board := make(Board, len(that))
	for square, value := range that {
		board[square] = value
	}

	return board
}

