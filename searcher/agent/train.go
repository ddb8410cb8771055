package agent

import (
	"context"
	"math"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. Moves are sampled
// in proportion to visits^(1/temperature), a non-positive temperature plays the
// recommended move.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.mcts.Run(ctx, state)
	if err != nil {
		return nil, result.Metric, err
	}
	if a.temperature <= 0 {
		return result.Move, result.Metric, nil
	}
	policy := adjustTemperature(result.Children, a.temperature)
	return sample(result.Children, policy, a.rng.Float64()), result.Metric, nil
}

// adjustTemperature turns child visits into move probabilities, in the order of children.
// Visits are scaled by the maximum first so low temperatures cannot overflow.
func adjustTemperature(children []searcher.ChildStat, temperature float64) []float64 {
	maxVisits := 0
	for _, child := range children {
		maxVisits = max(maxVisits, child.Visits)
	}

	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(children))
	for i, child := range children {
		if maxVisits == 0 {
			adjusted[i] = 1
		} else {
			adjusted[i] = math.Pow(float64(child.Visits)/float64(maxVisits), exponent)
		}
		sum += adjusted[i]
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(children []searcher.ChildStat, policy []float64, sampled float64) game.Move {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return children[i].Move
		}
	}
	log.Warn().Float64("sampled", sampled).Float64("cumulative", cumulative).Msg("falling back to the last move")
	return children[len(children)-1].Move // Fallback in case of rounding errors
}
