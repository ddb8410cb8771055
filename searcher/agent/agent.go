package agent

import (
	"context"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
)

type Agent interface {
	// FindMove returns the chosen move and performance metrics (if collected) from the search.
	// Agents are not safe for concurrent use.
	FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error)
}
