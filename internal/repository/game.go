package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrMalformedState = errors.New("malformed game state")
)

// GameRepository stores the single game of a repository. Get returns a fresh game together with
// ErrGameNotFound or ErrMalformedState when there is nothing usable stored.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context) (*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
	key    string
}

func NewGameRepository(client *redis.Client, gameID string) GameRepository {
	return &dbGame{
		client: client,
		key:    "game:" + gameID,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := encodeGame(game)
	if err != nil {
		return err
	}

	if err = that.client.Set(ctx, that.key, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) Get(ctx context.Context) (*entity.Game, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewGame(), ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(response)
}

// encodeGame - the persisted document: two-space indentation and a trailing newline.
func encodeGame(game *entity.Game) ([]byte, error) {
	gameJSON, err := json.MarshalIndent(game, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	return append(gameJSON, '\n'), nil
}

func decodeGame(data []byte) (*entity.Game, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return entity.NewGame(), fmt.Errorf("%w: empty document", ErrMalformedState)
	}

	var existingGame entity.Game
	if err := json.Unmarshal(data, &existingGame); err != nil {
		return entity.NewGame(), fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	return &existingGame, nil
}
