package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
)

const filePerm = 0o644

type fileGame struct {
	path string
}

// NewFileGameRepository keeps the game as a flat JSON document at path.
func NewFileGameRepository(path string) GameRepository {
	return &fileGame{
		path: path,
	}
}

func (that *fileGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := encodeGame(game)
	if err != nil {
		return err
	}

	if err = os.WriteFile(that.path, gameJSON, filePerm); err != nil {
		return fmt.Errorf("failed to write game file: %w", err)
	}

	return nil
}

func (that *fileGame) Get(_ context.Context) (*entity.Game, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.NewGame(), ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read game file: %w", err)
	}

	return decodeGame(data)
}
