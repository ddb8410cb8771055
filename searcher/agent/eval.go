package agent

import (
	"context"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.mcts.Run(ctx, state)
	if err != nil {
		return nil, result.Metric, err
	}
	return result.Move, result.Metric, nil
}
