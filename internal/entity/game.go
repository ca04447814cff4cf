package entity

const (
	PlayerX = "X"
	PlayerO = "O"
	Draw    = "D"

	EmptyCell = " "
	NoWinner  = ""

	BoardSize  = 9
	CenterCell = 4
)

// Status of a game derived from its board and winner.
const (
	StatusNotStarted = "not_started"
	StatusOngoing    = "ongoing"
	StatusFinished   = "finished"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid. It is a value type: assigning a Board copies every cell.
type Board [BoardSize]string

// Game is the persisted state of a single game.
type Game struct {
	Board  Board  `json:"board"`
	Turn   string `json:"turn"`
	Winner string `json:"winner"`
	Moves  int    `json:"moves"`
}

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}

	return board
}

func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Turn:   PlayerX,
		Winner: NoWinner,
		Moves:  0,
	}
}

// EmptyCells returns the indexes of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// With returns a copy of the board with mark placed at cell.
func (that Board) With(cell int, mark string) Board {
	that[cell] = mark
	return that
}

func (that Board) FilledCount() int {
	return len(that) - len(that.EmptyCells())
}

func (that *Game) IsFinished() bool {
	return that.Winner != NoWinner
}

func (that *Game) Status() string {
	switch {
	case that.IsFinished():
		return StatusFinished
	case that.Moves == 0:
		return StatusNotStarted
	default:
		return StatusOngoing
	}
}

func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
