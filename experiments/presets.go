package experiments

import (
	"fmt"

	"montecarlo/experiments/metrics"
)

// Preset returns a named experiment writing under root.
func Preset(name, root string) (Experiment, error) {
	switch name {
	case "cutoff":
		return CutoffExperiment(root), nil
	case "exploration":
		return ExplorationExperiment(root), nil
	case "ensemble":
		return EnsembleExperiment(root), nil
	default:
		return Experiment{}, fmt.Errorf("unknown experiment %q", name)
	}
}

// pairWithBaseline matches every config against the baseline.
func pairWithBaseline(baseline metrics.AgentConfig, configs []metrics.AgentConfig) [][2]int {
	matchUps := [][2]int{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]int{baseline.ID, config.ID})
	}
	return matchUps
}

func CutoffExperiment(root string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Exploration: 1.4, Duration: TimeBudget} // Without cutoff (full playout)
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Exploration: baseline.Exploration, Duration: baseline.Duration}, // Baseline equivalent
		{ID: 2, Exploration: baseline.Exploration, Duration: baseline.Duration, Cutoff: 2},
		{ID: 3, Exploration: baseline.Exploration, Duration: baseline.Duration, Cutoff: 4},
		{ID: 4, Exploration: baseline.Exploration, Duration: baseline.Duration, Cutoff: 6},
	}
	return Experiment{
		Name:     "cutoff",
		Root:     root,
		Game:     "tictactoe",
		NumGames: NumGames,
		Configs:  append(cutoffConfigs, baseline),
		MatchUps: pairWithBaseline(baseline, cutoffConfigs),
	}
}

func ExplorationExperiment(root string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Exploration: 1.4, Duration: TimeBudget}
	configs := []metrics.AgentConfig{
		{ID: 1, Exploration: 0.5, Duration: TimeBudget},
		{ID: 2, Exploration: 1.0, Duration: TimeBudget},
		{ID: 3, Exploration: 2.0, Duration: TimeBudget},
		{ID: 4, Exploration: 4.0, Duration: TimeBudget},
	}
	return Experiment{
		Name:     "exploration",
		Root:     root,
		Game:     "nim",
		NumGames: NumGames,
		Configs:  append(configs, baseline),
		MatchUps: pairWithBaseline(baseline, configs),
	}
}

// EnsembleExperiment pits root-parallel ensembles against a single search of the same budget.
func EnsembleExperiment(root string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Exploration: 1.4, Duration: TimeBudget}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "ensemble", Exploration: 1.4, Duration: TimeBudget, Searches: 2},
		{ID: 2, Kind: "ensemble", Exploration: 1.4, Duration: TimeBudget, Searches: 4},
		{ID: 3, Kind: "ensemble", Exploration: 1.4, Duration: TimeBudget, Searches: 8},
		{ID: 4, Kind: "random", Seed: 1},
	}
	return Experiment{
		Name:     "ensemble",
		Root:     root,
		Game:     "tictactoe",
		NumGames: NumGames,
		Configs:  append(configs, baseline),
		MatchUps: pairWithBaseline(baseline, configs),
	}
}
