package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-readme/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
	"github.com/rocketscienceinc/tictactoe-readme/internal/tictactoe"
)

// NoMove is returned by SelectMove when the board has no empty cell.
const NoMove = -1

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

type BotService interface {
	SelectMove(board entity.Board, difficulty entity.Difficulty) int
	MakeTurn(game *entity.Game, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	rnd      *rand.Rand
	mark     string
	opponent string
}

// NewBotService - the bot always plays O against X. A nil rnd uses a randomly seeded source.
func NewBotService(rnd *rand.Rand) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's ok
	}

	return &botService{
		rnd:      rnd,
		mark:     entity.PlayerO,
		opponent: entity.PlayerX,
	}
}

func (that *botService) MakeTurn(game *entity.Game, difficulty entity.Difficulty) (int, error) {
	cell := that.SelectMove(game.Board, difficulty)
	if cell == NoMove {
		return NoMove, apperror.ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(game, that.mark, cell); err != nil {
		return NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

func (that *botService) SelectMove(board entity.Board, difficulty entity.Difficulty) int {
	switch difficulty {
	case entity.EasyDifficulty:
		return that.easyMove(board)
	case entity.MediumDifficulty:
		return that.mediumMove(board)
	default:
		return that.hardMove(board)
	}
}

// easyMove - any empty cell, uniformly.
func (that *botService) easyMove(board entity.Board) int {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return NoMove
	}

	return availableCells[that.rnd.IntN(len(availableCells))]
}

// mediumMove - win, else block, else center, else random.
func (that *botService) mediumMove(board entity.Board) int {
	if cell := winningMove(board, that.mark); cell != NoMove {
		return cell
	}

	if cell := winningMove(board, that.opponent); cell != NoMove {
		return cell
	}

	if board[entity.CenterCell] == entity.EmptyCell {
		return entity.CenterCell
	}

	return that.easyMove(board)
}

func (that *botService) hardMove(board entity.Board) int {
	cell, _ := that.minimax(board, that.mark)
	return cell
}

// minimax - exhaustive search without pruning. Only a strictly better score replaces
// the current best, so ties keep the lowest index.
func (that *botService) minimax(board entity.Board, toMove string) (int, int) {
	switch tictactoe.CheckWinner(board) {
	case that.mark:
		return NoMove, scoreWin
	case that.opponent:
		return NoMove, scoreLoss
	case entity.Draw:
		return NoMove, scoreDraw
	}

	bestCell, bestScore := NoMove, 0
	for _, cell := range board.EmptyCells() {
		_, score := that.minimax(board.With(cell, toMove), entity.Opponent(toMove))

		switch {
		case bestCell == NoMove:
			bestCell, bestScore = cell, score
		case toMove == that.mark && score > bestScore:
			bestCell, bestScore = cell, score
		case toMove != that.mark && score < bestScore:
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, bestScore
}

// winningMove - the first empty cell that completes a line for mark.
func winningMove(board entity.Board, mark string) int {
	for _, cell := range board.EmptyCells() {
		if tictactoe.CheckWinner(board.With(cell, mark)) == mark {
			return cell
		}
	}

	return NoMove
}
