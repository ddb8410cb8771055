package experiments

import (
	"context"
	"fmt"
	"time"

	"montecarlo/engine"
	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"
	"montecarlo/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

// Experiment plays every match up NumGames times and stores the results under Root.
type Experiment struct {
	Name     string
	Root     string
	Game     string
	Position string
	NumGames int
	Configs  []metrics.AgentConfig
	MatchUps [][2]int // pairs of AgentConfig.ID
}

// Run plays the experiment and returns the directory holding its CSV files. Seats
// alternate between games so both agents start equally often.
func Run(ctx context.Context, exp Experiment) (string, error) {
	configs := make(map[int]metrics.AgentConfig, len(exp.Configs))
	for _, config := range exp.Configs {
		configs[config.ID] = config
	}
	numGames := exp.NumGames
	if numGames <= 0 {
		numGames = NumGames
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchUp := range exp.MatchUps {
		config1, ok1 := configs[matchUp[0]]
		config2, ok2 := configs[matchUp[1]]
		if !ok1 || !ok2 {
			return "", fmt.Errorf("%w: match up %d references unknown agent %v", searcher.ErrConfig, mi+1, matchUp)
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			outcome, gameMetric, moveMetrics, err := runGame(ctx, exp, first, second, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome %v", mi+1, len(exp.MatchUps), i+1, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)
	return store(exp, gameRecords, moveRecords)
}

func store(exp Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.Root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays a single game, first moves for player 0
func runGame(ctx context.Context, exp Experiment, first, second metrics.AgentConfig, index uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := NewGame(exp.Game, exp.Position, 2)
	if err != nil {
		return nil, metrics.GameMetric{}, nil, err
	}
	agents := make([]agent.Agent, 2)
	for i, config := range []metrics.AgentConfig{first, second} {
		config.Seed += index // vary games within a match up
		agents[i], err = NewAgent(config)
		if err != nil {
			return nil, metrics.GameMetric{}, nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
	}

	e, err := engine.LocalEngine(agents, state)
	if err != nil {
		return nil, metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}

// NewAgent builds the agent described by config. The kind defaults to "mcts".
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(config.Seed), nil
	case "", "mcts":
		m, err := createMCTS(config, config.Seed)
		if err != nil {
			return nil, err
		}
		return agent.NewEvaluationAgent(m), nil
	case "training":
		m, err := createMCTS(config, config.Seed)
		if err != nil {
			return nil, err
		}
		return agent.NewTrainingAgent(m, config.Temperature, config.Seed), nil
	case "ensemble":
		searches := max(config.Searches, 1)
		engines := make([]*searcher.MCTS, searches)
		for i := range engines {
			m, err := createMCTS(config, config.Seed+uint64(i))
			if err != nil {
				return nil, err
			}
			engines[i] = m
		}
		return agent.NewEnsembleAgent(engines...), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", searcher.ErrConfig, config.Kind)
	}
}

func createMCTS(config metrics.AgentConfig, seed uint64) (*searcher.MCTS, error) {
	options := []searcher.Option{
		searcher.WithExploration(config.Exploration),
		searcher.WithSeed(seed),
	}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	rewarder, err := searcher.ParseRewarder(config.Rewarder)
	if err != nil {
		return nil, err
	}
	options = append(options, searcher.WithRewarder(rewarder))

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
