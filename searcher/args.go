package searcher

import (
	"fmt"
	"time"

	"montecarlo/game"
)

// Hyperparameters and budget of a search

type Option func(m *MCTS)

// ExpansionOrder decides which untried move is expanded next.
type ExpansionOrder int

const (
	ExpandRandom  ExpansionOrder = iota // uniform pick from the Source
	ExpandInOrder                       // first untried move in LegalMoves order
)

// TieBreak resolves equal scores during selection and recommendation.
type TieBreak int

const (
	TieBreakRandom TieBreak = iota // uniform pick from the Source
	TieBreakFirst                  // earliest expanded child
)

// ParseExpansionOrder maps "random" (the default for an empty name) and "in-order".
func ParseExpansionOrder(name string) (ExpansionOrder, error) {
	switch name {
	case "", "random":
		return ExpandRandom, nil
	case "in-order":
		return ExpandInOrder, nil
	default:
		return 0, fmt.Errorf("%w: unknown expansion order %q", ErrConfig, name)
	}
}

// ParseTieBreak maps "random" (the default for an empty name) and "first".
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case "", "random":
		return TieBreakRandom, nil
	case "first":
		return TieBreakFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown tie-break %q", ErrConfig, name)
	}
}

// WithExploration sets the UCT exploration factor C, it must be strictly positive.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		m.episodes = episodes
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// WithCutoff limits rollouts to depth moves, the state reached is scored by the evaluation function.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		m.cutoff = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithRewarder(rewarder Rewarder) Option {
	return func(m *MCTS) {
		if rewarder != nil {
			m.rewarder = rewarder
		}
	}
}

func WithExpansionOrder(order ExpansionOrder) Option {
	return func(m *MCTS) {
		m.order = order
	}
}

func WithTieBreak(tieBreak TieBreak) Option {
	return func(m *MCTS) {
		m.tieBreak = tieBreak
	}
}

func WithArenaCapacity(capacity int) Option {
	return func(m *MCTS) {
		if capacity > 0 {
			m.capacity = capacity
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.collectMetrics = true
	}
}
