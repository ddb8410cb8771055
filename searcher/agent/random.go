package agent

import (
	"context"
	"fmt"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: state is terminal", searcher.ErrNoAction)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: non-terminal state %v has no legal moves", searcher.ErrContractViolation, state)
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
