package agent

import (
	"context"
	"fmt"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type ensembleAgent struct {
	engines []*searcher.MCTS
}

// NewEnsembleAgent returns an agent running one independent search per engine in parallel
// (root parallelization). Each engine builds its own tree from its own seed, the root
// visits are summed and the most visited move is played.
func NewEnsembleAgent(engines ...*searcher.MCTS) Agent {
	return ensembleAgent{engines: engines}
}

func (a ensembleAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	if len(a.engines) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: ensemble without engines", searcher.ErrConfig)
	}

	results := make([]searcher.Result, len(a.engines))
	g, ctx := errgroup.WithContext(ctx)
	for i, engine := range a.engines {
		i, engine := i, engine
		g.Go(func() error {
			result, err := engine.Run(ctx, state)
			if err != nil {
				return fmt.Errorf("search %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	children := merge(results)
	best := children[0]
	for _, child := range children[1:] {
		if child.Visits > best.Visits {
			best = child
		}
	}

	metric := combine(results)
	log.Debug().
		Str("move", best.Move.String()).
		Int("searches", len(results)).
		Int("visits", best.Visits).
		Msg("ensemble complete")
	return best.Move, metric, nil
}

// merge sums the root statistics of every search, moves keep the order they were first seen in.
func merge(results []searcher.Result) []searcher.ChildStat {
	var merged []searcher.ChildStat
	index := make(map[game.Move]int)
	for _, result := range results {
		for _, child := range result.Children {
			i, ok := index[child.Move]
			if !ok {
				i = len(merged)
				index[child.Move] = i
				merged = append(merged, searcher.ChildStat{Move: child.Move})
			}
			total := merged[i].Mean*float64(merged[i].Visits) + child.Mean*float64(child.Visits)
			merged[i].Visits += child.Visits
			if merged[i].Visits > 0 {
				merged[i].Mean = total / float64(merged[i].Visits)
			}
		}
	}
	return merged
}

func combine(results []searcher.Result) metrics.SearchMetric {
	metric := results[0].Metric
	for _, result := range results[1:] {
		metric.Duration = max(metric.Duration, result.Metric.Duration)
		metric.Episodes += result.Metric.Episodes
		metric.FullPlayouts += result.Metric.FullPlayouts
		metric.CutoffPlayouts += result.Metric.CutoffPlayouts
		metric.Nodes += result.Metric.Nodes
		metric.MaxDepth = max(metric.MaxDepth, result.Metric.MaxDepth)
	}
	return metric
}
