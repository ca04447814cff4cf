package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-readme/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-readme/internal/config"
	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
	"github.com/rocketscienceinc/tictactoe-readme/internal/render"
	"github.com/rocketscienceinc/tictactoe-readme/internal/repository"
	"github.com/rocketscienceinc/tictactoe-readme/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-readme/internal/service"
	"github.com/rocketscienceinc/tictactoe-readme/internal/usecase"
)

var (
	ErrAddrNotFound    = errors.New("redis host is empty")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

type gameManager interface {
	Play(ctx context.Context, cell int) (*entity.Game, error)
	ChooseDifficulty(ctx context.Context, difficulty string) (*entity.Game, error)
	Reset(ctx context.Context) (*entity.Game, error)
	Refresh(ctx context.Context) (*entity.Game, error)
}

type commandHandler func(ctx context.Context, args []string) (*entity.Game, error)

// RunApp - runs a single command against the stored game.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, difficultyRepo, closeStorage, err := newRepositories(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	readme := render.New(render.Repository{Owner: conf.Repo.Owner, Name: conf.Repo.Name}, conf.ReadmeFile)
	gameManager := usecase.NewGameManager(logger, gameRepo, difficultyRepo, service.NewBotService(nil), readme)

	return RunCommand(ctx, logger, gameManager, args)
}

// RunCommand - dispatches args[0] to its handler. A move against a finished game or a rejected
// click is reported, not failed: the stored state and the README stay as they were.
func RunCommand(ctx context.Context, logger *slog.Logger, manager gameManager, args []string) error {
	log := logger.With("component", "app")

	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of play, difficulty, reset, render", ErrMissingArgument)
	}

	handler, ok := newCommands(manager)[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	game, err := handler(ctx, args[1:])
	if errors.Is(err, apperror.ErrGameFinished) {
		log.Info("game is already finished", "winner", game.Winner)
		return nil
	}

	if isRejectedMove(err) {
		log.Warn("move rejected", "args", args[1:], "error", err)
		return nil
	}

	if err != nil {
		return fmt.Errorf("command %s failed: %w", args[0], err)
	}

	log.Info("command done", "command", args[0], "status", game.Status(), "moves", game.Moves, "winner", game.Winner)

	return nil
}

func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}

func newCommands(manager gameManager) map[string]commandHandler {
	return map[string]commandHandler{
		"play": func(ctx context.Context, args []string) (*entity.Game, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("%w: cell index", ErrMissingArgument)
			}

			cell, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, args[0])
			}

			return manager.Play(ctx, cell)
		},
		"difficulty": func(ctx context.Context, args []string) (*entity.Game, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("%w: difficulty", ErrMissingArgument)
			}

			return manager.ChooseDifficulty(ctx, args[0])
		},
		"reset": func(ctx context.Context, _ []string) (*entity.Game, error) {
			return manager.Reset(ctx)
		},
		"render": func(ctx context.Context, _ []string) (*entity.Game, error) {
			return manager.Refresh(ctx)
		},
	}
}

func newRepositories(ctx context.Context, conf *config.Config) (repository.GameRepository, repository.DifficultyRepository, func() error, error) {
	if conf.Storage.Type != config.StorageRedis {
		return repository.NewFileGameRepository(conf.StateFile),
			repository.NewFileDifficultyRepository(conf.DifficultyFile),
			func() error { return nil },
			nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Storage.GameID),
		repository.NewDifficultyRepository(redisStorage.Connection, conf.Storage.GameID),
		redisStorage.Close,
		nil
}
