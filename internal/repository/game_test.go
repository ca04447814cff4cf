package repository

import (
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
	"github.com/rocketscienceinc/tictactoe-readme/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedGame() *entity.Game {
	return &entity.Game{
		Board:  entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerX},
		Turn:   entity.PlayerO,
		Winner: entity.NoWinner,
		Moves:  3,
	}
}

func TestFileGameRepository_Format(t *testing.T) {
	ctx, st := suite.NewFiles(t)

	gameRepo := NewFileGameRepository(st.StateFile)

	// Given: a fresh game
	game := entity.NewGame()

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)
	require.NoError(t, err)

	// Then: the document uses the stable indented layout
	data, err := os.ReadFile(st.StateFile)
	require.NoError(t, err)

	expected := `{
  "board": [
    " ",
    " ",
    " ",
    " ",
    " ",
    " ",
    " ",
    " ",
    " "
  ],
  "turn": "X",
  "winner": "",
  "moves": 0
}
`
	assert.Equal(t, expected, string(data))
}

func TestFileGameRepository_Get(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		gameRepo := NewFileGameRepository(st.StateFile)

		// Given: a stored game in progress
		game := playedGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: Get is called
		retrievedGame, err := gameRepo.Get(ctx)

		// Then: the same game is returned
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Round trip of a finished game", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		gameRepo := NewFileGameRepository(st.StateFile)

		// Given: a stored draw
		game := &entity.Game{
			Board:  entity.Board{"X", "O", "X", "X", "O", "O", "O", "X", "X"},
			Turn:   entity.PlayerX,
			Winner: entity.Draw,
			Moves:  9,
		}
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: Get is called
		retrievedGame, err := gameRepo.Get(ctx)

		// Then: the same game is returned
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Reads the compact layout", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		// Given: a document written on a single board line
		doc := `{
  "board": ["X", " ", " ", " ", "O", " ", " ", " ", "X"],
  "turn": "O",
  "winner": "",
  "moves": 3
}
`
		require.NoError(t, os.WriteFile(st.StateFile, []byte(doc), 0o600))

		// When: Get is called
		retrievedGame, err := NewFileGameRepository(st.StateFile).Get(ctx)

		// Then: it is parsed as-is
		require.NoError(t, err)
		assert.Equal(t, playedGame(), retrievedGame)
	})

	t.Run("Missing file", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		// When: Get is called before anything was stored
		retrievedGame, err := NewFileGameRepository(st.StateFile).Get(ctx)

		// Then: ErrGameNotFound is returned with a fresh game
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Equal(t, entity.NewGame(), retrievedGame)
	})

	t.Run("Malformed file", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		// Given: a broken document
		require.NoError(t, os.WriteFile(st.StateFile, []byte(`{"board": [`), 0o600))

		// When: Get is called
		retrievedGame, err := NewFileGameRepository(st.StateFile).Get(ctx)

		// Then: ErrMalformedState is returned with a fresh game
		require.ErrorIs(t, err, ErrMalformedState)
		assert.Equal(t, entity.NewGame(), retrievedGame)
	})

	t.Run("Empty file", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		require.NoError(t, os.WriteFile(st.StateFile, []byte("\n"), 0o600))

		retrievedGame, err := NewFileGameRepository(st.StateFile).Get(ctx)

		require.ErrorIs(t, err, ErrMalformedState)
		assert.Equal(t, entity.NewGame(), retrievedGame)
	})

	t.Run("Unreadable path surfaces the error", func(t *testing.T) {
		ctx, st := suite.NewFiles(t)

		// Given: the state path is a directory
		require.NoError(t, os.Mkdir(st.StateFile, 0o755))

		// When: Get is called
		retrievedGame, err := NewFileGameRepository(st.StateFile).Get(ctx)

		// Then: the I/O error is not swallowed
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrGameNotFound)
		require.NotErrorIs(t, err, ErrMalformedState)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, suite.GameID)

	// Given: a game in progress
	game := playedGame()

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and the same document is stored under the game key
	require.NoError(t, err)

	stored, err := st.Storage.Get(ctx, "game:"+suite.GameID).Bytes()
	require.NoError(t, err)

	expected, err := encodeGame(game)
	require.NoError(t, err)
	assert.Equal(t, expected, stored)
}

func TestGameRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, suite.GameID)

		// Given: a stored game
		game := playedGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: Get is called
		retrievedGame, err := gameRepo.Get(ctx)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, suite.GameID)

		// When: Get is called before anything was stored
		retrievedGame, err := gameRepo.Get(ctx)

		// Then: an ErrGameNotFound error should be returned with a fresh game
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Equal(t, entity.NewGame(), retrievedGame)
	})

	t.Run("Get_Malformed", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, suite.GameID)

		// Given: garbage under the game key
		require.NoError(t, st.Storage.Set(ctx, "game:"+suite.GameID, "not json", 0).Err())

		// When: Get is called
		retrievedGame, err := gameRepo.Get(ctx)

		// Then: an ErrMalformedState error should be returned with a fresh game
		require.ErrorIs(t, err, ErrMalformedState)
		assert.Equal(t, entity.NewGame(), retrievedGame)
	})
}
