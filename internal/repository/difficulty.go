package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DifficultyRepository keeps the raw difficulty selector. An unset selector reads as "".
type DifficultyRepository interface {
	CreateOrUpdate(ctx context.Context, difficulty string) error
	Get(ctx context.Context) (string, error)
}

type dbDifficulty struct {
	client *redis.Client
	key    string
}

func NewDifficultyRepository(client *redis.Client, gameID string) DifficultyRepository {
	return &dbDifficulty{
		client: client,
		key:    "difficulty:" + gameID,
	}
}

func (that *dbDifficulty) CreateOrUpdate(ctx context.Context, difficulty string) error {
	if err := that.client.Set(ctx, that.key, strings.TrimSpace(difficulty), 0).Err(); err != nil {
		return fmt.Errorf("failed to set difficulty: %w", err)
	}

	return nil
}

func (that *dbDifficulty) Get(ctx context.Context) (string, error) {
	response, err := that.client.Get(ctx, that.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to get difficulty: %w", err)
	}

	return strings.TrimSpace(response), nil
}

type fileDifficulty struct {
	path string
}

// NewFileDifficultyRepository keeps the selector as plain text at path.
func NewFileDifficultyRepository(path string) DifficultyRepository {
	return &fileDifficulty{
		path: path,
	}
}

func (that *fileDifficulty) CreateOrUpdate(_ context.Context, difficulty string) error {
	if err := os.WriteFile(that.path, []byte(strings.TrimSpace(difficulty)+"\n"), filePerm); err != nil {
		return fmt.Errorf("failed to write difficulty file: %w", err)
	}

	return nil
}

func (that *fileDifficulty) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read difficulty file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
