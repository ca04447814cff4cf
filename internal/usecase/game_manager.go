package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-readme/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
	"github.com/rocketscienceinc/tictactoe-readme/internal/repository"
	"github.com/rocketscienceinc/tictactoe-readme/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context) (*entity.Game, error)
}

type difficultyRepo interface {
	CreateOrUpdate(ctx context.Context, difficulty string) error
	Get(ctx context.Context) (string, error)
}

type botService interface {
	MakeTurn(game *entity.Game, difficulty entity.Difficulty) (int, error)
}

type readmePublisher interface {
	Publish(ctx context.Context, game *entity.Game, difficulty string) error
}

// GameManager runs one command per invocation: load the state, apply the command, persist, re-render.
type GameManager struct {
	logger *slog.Logger

	gameRepo       gameRepo
	difficultyRepo difficultyRepo
	bot            botService
	readme         readmePublisher
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, difficultyRepo difficultyRepo, bot botService, readme readmePublisher) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:       gameRepo,
		difficultyRepo: difficultyRepo,
		bot:            bot,
		readme:         readme,
	}
}

// Play - the human move at cell followed by the AI answer. A finished game is left untouched
// and reported with apperror.ErrGameFinished. A stored game where O is to move gets the AI move first.
func (that *GameManager) Play(ctx context.Context, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "Play", "cell", cell)

	game, err := that.getGame(ctx)
	if err != nil {
		return nil, err
	}

	difficulty, err := that.getDifficulty(ctx)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		if err = that.publish(ctx, game, difficulty); err != nil {
			return nil, err
		}

		return game, apperror.ErrGameFinished
	}

	tier := entity.ParseDifficulty(difficulty)

	if game.Turn == entity.PlayerO {
		log.Warn("bot owes a move, playing it first")

		if err = that.botTurn(log, game, tier); err != nil {
			return nil, err
		}

		if game.IsFinished() {
			if err = that.updateGame(ctx, game); err != nil {
				return nil, err
			}

			if err = that.publish(ctx, game, difficulty); err != nil {
				return nil, err
			}

			return game, apperror.ErrGameFinished
		}
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerX, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if !game.IsFinished() {
		if err = that.botTurn(log, game, tier); err != nil {
			return nil, err
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner, "moves", game.Moves)
	}

	if err = that.publish(ctx, game, difficulty); err != nil {
		return nil, err
	}

	return game, nil
}

// ChooseDifficulty - stores the tier and starts a new game. Unknown values resolve to hard.
func (that *GameManager) ChooseDifficulty(ctx context.Context, raw string) (*entity.Game, error) {
	log := that.logger.With("method", "ChooseDifficulty")

	difficulty := entity.ParseDifficulty(raw)
	if !entity.IsKnownDifficulty(raw) {
		log.Warn("unknown difficulty, falling back", "requested", raw, "difficulty", difficulty)
	}

	if err := that.difficultyRepo.CreateOrUpdate(ctx, difficulty.String()); err != nil {
		return nil, fmt.Errorf("failed to update difficulty: %w", err)
	}

	return that.startGame(ctx, difficulty.String())
}

// Reset - starts a new game with the current difficulty.
func (that *GameManager) Reset(ctx context.Context) (*entity.Game, error) {
	difficulty, err := that.getDifficulty(ctx)
	if err != nil {
		return nil, err
	}

	return that.startGame(ctx, difficulty)
}

// Refresh - re-renders the README from the stored state.
func (that *GameManager) Refresh(ctx context.Context) (*entity.Game, error) {
	game, err := that.getGame(ctx)
	if err != nil {
		return nil, err
	}

	difficulty, err := that.getDifficulty(ctx)
	if err != nil {
		return nil, err
	}

	if err = that.publish(ctx, game, difficulty); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) startGame(ctx context.Context, difficulty string) (*entity.Game, error) {
	game := entity.NewGame()

	if err := that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if err := that.publish(ctx, game, difficulty); err != nil {
		return nil, err
	}

	that.logger.Info("game started", "difficulty", difficulty)

	return game, nil
}

// getGame - loads the stored game. A missing or malformed document is replaced by a fresh game.
func (that *GameManager) getGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "getGame")

	game, err := that.gameRepo.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrGameNotFound), errors.Is(err, repository.ErrMalformedState):
		log.Warn("reinitializing game state", "reason", err)

		game = entity.NewGame()
		if err = that.updateGame(ctx, game); err != nil {
			return nil, err
		}

		return game, nil
	case err != nil:
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	tictactoe.Normalize(game)

	return game, nil
}

func (that *GameManager) getDifficulty(ctx context.Context) (string, error) {
	difficulty, err := that.difficultyRepo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get difficulty: %w", err)
	}

	return difficulty, nil
}

func (that *GameManager) botTurn(log *slog.Logger, game *entity.Game, tier entity.Difficulty) error {
	aiCell, err := that.bot.MakeTurn(game, tier)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Info("bot made turn", "bot_cell", aiCell, "difficulty", tier)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) publish(ctx context.Context, game *entity.Game, difficulty string) error {
	if err := that.readme.Publish(ctx, game, difficulty); err != nil {
		return fmt.Errorf("failed to publish readme: %w", err)
	}

	return nil
}
