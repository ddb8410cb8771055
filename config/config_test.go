package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"montecarlo/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
log:
  level: debug
game:
  name: nim
  position: "1,2"
  players: 3
search:
  duration: 250ms
  episodes: 0
  rewarder: per-player
  tie_break: first
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "nim", config.Game.Name)
		require.Equal(t, 3, config.Game.Players)
		require.Equal(t, 250*time.Millisecond, config.Search.Duration)
		require.Equal(t, 0, config.Search.Episodes)
		require.Equal(t, Exploration, config.Search.Exploration, "Missing fields should keep defaults")
		level, err := config.Log.ZerologLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("reading experiment agents", func(t *testing.T) {
		path := writeConfig(t, `
experiment:
  name: custom
  num_games: 4
  agents:
    - {id: 1, exploration: 1.4, episodes: 100}
    - {id: 2, kind: random, seed: 3}
  match_ups:
    - [1, 2]
`)

		config, err := Load(path)
		require.NoError(t, err)
		exp, err := config.BuildExperiment()

		require.NoError(t, err)
		require.Equal(t, "custom", exp.Name)
		require.Equal(t, 4, exp.NumGames)
		require.Len(t, exp.Configs, 2)
		require.Equal(t, "random", exp.Configs[1].Kind)
		require.Equal(t, [][2]int{{1, 2}}, exp.MatchUps)
		require.Equal(t, "tictactoe", exp.Game)
	})

	t.Run("unknown rewarder", func(t *testing.T) {
		path := writeConfig(t, "search:\n  rewarder: minimax\n")

		_, err := Load(path)

		require.ErrorIs(t, err, searcher.ErrConfig)
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: loud\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestSearchConfig(t *testing.T) {
	t.Run("defaults build a search", func(t *testing.T) {
		m, err := Default().Search.MCTS()

		require.NoError(t, err)
		require.Equal(t, Exploration, m.Exploration())
	})

	t.Run("search validation applies", func(t *testing.T) {
		search := Default().Search
		search.Episodes = 0

		_, err := search.MCTS()

		require.ErrorIs(t, err, searcher.ErrConfig, "A search needs a budget")
	})
}

func TestBuildExperiment(t *testing.T) {
	t.Run("preset without agents", func(t *testing.T) {
		config := Default()
		config.Experiment.NumGames = 2

		exp, err := config.BuildExperiment()

		require.NoError(t, err)
		require.Equal(t, "cutoff", exp.Name)
		require.Equal(t, 2, exp.NumGames)
		require.NotEmpty(t, exp.MatchUps)
	})

	t.Run("unknown preset", func(t *testing.T) {
		config := Default()
		config.Experiment.Name = "throughput"

		_, err := config.BuildExperiment()

		require.Error(t, err)
	})
}
