package calc

import "errors"

// Mark is the content of one board cell.
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string {
	if m == Empty {
		return " "
	}
	return string(m)
}

var (
	ErrCellTaken   = errors.New("cell is already taken")
	ErrCellInvalid = errors.New("cell must be between 1 and 9")
	ErrGameOver    = errors.New("game is over")
)

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// TicTacToe is a two-player 3x3 game. X moves first.
type TicTacToe struct {
	board  [9]Mark
	turn   Mark
	winner Mark
	moves  int
}

func NewTicTacToe() *TicTacToe {
	return &TicTacToe{turn: X}
}

// Play places the current player's mark on cell (0..8).
func (g *TicTacToe) Play(cell int) error {
	if g.Over() {
		return ErrGameOver
	}
	if cell < 0 || cell >= len(g.board) {
		return ErrCellInvalid
	}
	if g.board[cell] != Empty {
		return ErrCellTaken
	}
	g.board[cell] = g.turn
	g.moves++
	g.winner = Winner(g.board)
	if g.winner == Empty {
		g.turn = other(g.turn)
	}
	return nil
}

func other(m Mark) Mark {
	if m == X {
		return O
	}
	return X
}

// Winner returns the mark owning a complete line, or Empty.
func Winner(b [9]Mark) Mark {
	for _, l := range winLines {
		if b[l[0]] != Empty && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			return b[l[0]]
		}
	}
	return Empty
}

func (g *TicTacToe) Board() [9]Mark { return g.board }
func (g *TicTacToe) Turn() Mark     { return g.turn }
func (g *TicTacToe) Winner() Mark   { return g.winner }

// Draw reports a full board with no winner.
func (g *TicTacToe) Draw() bool { return g.winner == Empty && g.moves == len(g.board) }

func (g *TicTacToe) Over() bool { return g.winner != Empty || g.moves == len(g.board) }

func (g *TicTacToe) Reset() { *g = TicTacToe{turn: X} }

// Status is the one-line game state shown under the board.
func (g *TicTacToe) Status() string {
	switch {
	case g.winner != Empty:
		return "Winner: " + g.winner.String()
	case g.Draw():
		return "It's a draw!"
	default:
		return "Next player: " + g.turn.String()
	}
}
