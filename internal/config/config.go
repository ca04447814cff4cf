package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

var ErrUnknownStorage = errors.New("unknown storage type")

type Config struct {
	LogLevel       string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	StateFile      string  `yaml:"state-file" env:"TICTACTOE_STATE_FILE" env-default:"board.json"`
	DifficultyFile string  `yaml:"difficulty-file" env:"TICTACTOE_DIFFICULTY_FILE" env-default:"difficulty.txt"`
	ReadmeFile     string  `yaml:"readme-file" env:"TICTACTOE_README_FILE" env-default:"README.md"`
	Repo           Repo    `yaml:"repo"`
	Storage        Storage `yaml:"storage"`
	Redis          Redis   `yaml:"redis"`
}

// Repo - the GitHub repository whose README hosts the board.
type Repo struct {
	Owner string `yaml:"owner" env:"TICTACTOE_REPO_OWNER" env-default:""`
	Name  string `yaml:"name" env:"TICTACTOE_REPO_NAME" env-default:""`
}

type Storage struct {
	Type   string `yaml:"type" env:"TICTACTOE_STORAGE" env-default:"file"`
	GameID string `yaml:"game-id" env:"TICTACTOE_GAME_ID" env-default:"readme"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in the config file, falling back to the environment when it does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage.Type {
	case StorageFile, StorageRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage.Type)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
