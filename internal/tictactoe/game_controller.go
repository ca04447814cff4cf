package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-readme/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
)

// MakeTurn - places mark at cell and advances the game. A rejected turn leaves the game untouched.
func MakeTurn(gameInstance *entity.Game, mark string, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = mark
	gameInstance.Moves++
	updateGameStatus(gameInstance, mark)

	return nil
}

// CheckWinner - returns the mark owning a full win line, entity.Draw for a full board, or entity.NoWinner.
func CheckWinner(board entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	if board.IsFull() {
		return entity.Draw
	}

	return entity.NoWinner
}

// Normalize - repairs a loaded game so that its counters agree with the board.
func Normalize(gameInstance *entity.Game) {
	for i, cell := range gameInstance.Board {
		if cell != entity.PlayerX && cell != entity.PlayerO {
			gameInstance.Board[i] = entity.EmptyCell
		}
	}

	gameInstance.Moves = gameInstance.Board.FilledCount()
	gameInstance.Winner = CheckWinner(gameInstance.Board)

	// a finished game keeps the mark that moved last
	if gameInstance.IsFinished() && (gameInstance.Turn == entity.PlayerX || gameInstance.Turn == entity.PlayerO) {
		return
	}

	gameInstance.Turn = turnFromBoard(gameInstance.Board)
}

// turnFromBoard - X opens, so O is to move only while X has more marks.
func turnFromBoard(board entity.Board) string {
	var xCount, oCount int
	for _, cell := range board {
		switch cell {
		case entity.PlayerX:
			xCount++
		case entity.PlayerO:
			oCount++
		}
	}

	if xCount > oCount {
		return entity.PlayerO
	}

	return entity.PlayerX
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark string) {
	switch winner := CheckWinner(gameInstance.Board); winner {
	case entity.PlayerX, entity.PlayerO, entity.Draw:
		gameInstance.Winner = winner
	default:
		gameInstance.Turn = entity.Opponent(mark)
	}
}
