package console

const (
	introMessage = "Welcome to tic-tac-toe!"

	nextTurnMessage = "Player %s: Pick a square (1a-3c). "

	invalidSquareMessage = "\"%s\" is not a valid input. Please type an empty square value (1a-3c)."

	unavailableSquareMessage = "Square %s is already filled in. Please pick another square (1a-3c). "

	winnerMessage = "We have a winner - Player %s! Great job!! "

	tieMessage = "Oops - Tie Game! No winners or losers here. :) "

	abortMessage = "Game aborted."
)

const boardTemplate = `
      ||      ||
  {1a}  ||  {1b}  ||  {1c}
      ||      ||
======================
      ||      ||
  {2a}  ||  {2b}  ||  {2c}
      ||      ||
======================
      ||      ||
  {3a}  ||  {3b}  ||  {3c}
      ||      ||
`
