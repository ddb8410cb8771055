// Package config holds the YAML configuration of the command line tool.
package config

import (
	"fmt"
	"os"
	"time"

	"montecarlo/experiments"
	"montecarlo/experiments/metrics"
	"montecarlo/searcher"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Defaults of the command line, the search core itself assumes no exploration factor.
const (
	Exploration = 1.4
	Episodes    = 1000
	Cutoff      = searcher.NoCutoff
	OutputDir   = "results"
)

type Config struct {
	Log        LogConfig        `yaml:"log"`
	Game       GameConfig       `yaml:"game"`
	Search     SearchConfig     `yaml:"search"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"` // console output instead of JSON
}

type GameConfig struct {
	Name     string `yaml:"name"` // tictactoe or nim
	Position string `yaml:"position"`
	Players  int    `yaml:"players"` // nim only
}

type SearchConfig struct {
	Exploration   float64       `yaml:"exploration"`
	Episodes      int           `yaml:"episodes"`
	Duration      time.Duration `yaml:"duration"`
	Seed          uint64        `yaml:"seed"`
	Cutoff        int           `yaml:"cutoff"`
	Rewarder      string        `yaml:"rewarder"`  // zero-sum or per-player
	Expansion     string        `yaml:"expansion"` // random or in-order
	TieBreak      string        `yaml:"tie_break"` // random or first
	ArenaCapacity int           `yaml:"arena_capacity"`
	Metrics       bool          `yaml:"metrics"`
}

type ExperimentConfig struct {
	Name     string                `yaml:"name"` // a preset unless agents are listed
	Output   string                `yaml:"output"`
	NumGames int                   `yaml:"num_games"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][2]int              `yaml:"match_ups"`
}

func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info", Pretty: true},
		Game: GameConfig{Name: "tictactoe", Players: 2},
		Search: SearchConfig{
			Exploration: Exploration,
			Episodes:    Episodes,
			Cutoff:      Cutoff,
			Rewarder:    "zero-sum",
			Expansion:   "random",
			TieBreak:    "random",
		},
		Experiment: ExperimentConfig{
			Name:     "cutoff",
			Output:   OutputDir,
			NumGames: experiments.NumGames,
		},
	}
}

// Load reads path over the defaults, fields missing from the file keep their default.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := config.Search.Options(); err != nil {
		return config, err
	}
	if _, err := config.Log.ZerologLevel(); err != nil {
		return config, err
	}
	return config, nil
}

func (c LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}

// Options maps the configuration to search options. Budget and exploration are
// validated by searcher.NewMCTS.
func (c SearchConfig) Options() ([]searcher.Option, error) {
	rewarder, err := searcher.ParseRewarder(c.Rewarder)
	if err != nil {
		return nil, err
	}
	order, err := searcher.ParseExpansionOrder(c.Expansion)
	if err != nil {
		return nil, err
	}
	tieBreak, err := searcher.ParseTieBreak(c.TieBreak)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithExploration(c.Exploration),
		searcher.WithEpisodes(c.Episodes),
		searcher.WithDuration(c.Duration),
		searcher.WithSeed(c.Seed),
		searcher.WithCutoff(c.Cutoff),
		searcher.WithRewarder(rewarder),
		searcher.WithExpansionOrder(order),
		searcher.WithTieBreak(tieBreak),
		searcher.WithArenaCapacity(c.ArenaCapacity),
	}
	if c.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return options, nil
}

func (c SearchConfig) MCTS() (*searcher.MCTS, error) {
	options, err := c.Options()
	if err != nil {
		return nil, err
	}
	return searcher.NewMCTS(options...)
}

// BuildExperiment returns the configured experiment, or the preset of the same name when no agents are listed.
func (c Config) BuildExperiment() (experiments.Experiment, error) {
	if len(c.Experiment.Agents) == 0 {
		exp, err := experiments.Preset(c.Experiment.Name, c.Experiment.Output)
		if err != nil {
			return exp, err
		}
		exp.NumGames = c.Experiment.NumGames
		return exp, nil
	}
	return experiments.Experiment{
		Name:     c.Experiment.Name,
		Root:     c.Experiment.Output,
		Game:     c.Game.Name,
		Position: c.Game.Position,
		NumGames: c.Experiment.NumGames,
		Configs:  c.Experiment.Agents,
		MatchUps: c.Experiment.MatchUps,
	}, nil
}
