package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"montecarlo/experiments/metrics"
	"montecarlo/game"

	"github.com/rs/zerolog/log"
)

// MCTS holds the configuration of a search. It keeps no state between runs, every
// Run builds a fresh tree and a fresh Source from the seed.
type MCTS struct {
	exploration    float64
	episodes       int
	duration       time.Duration
	seed           uint64
	cutoff         int
	evaluate       game.Evaluate
	rewarder       Rewarder
	order          ExpansionOrder
	tieBreak       TieBreak
	capacity       int
	collectMetrics bool
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		cutoff:   NoCutoff,
		evaluate: game.Neutral,
		rewarder: ZeroSum{},
		order:    ExpandRandom,
		tieBreak: TieBreakRandom,
		capacity: DefaultArenaCapacity,
	}
	for _, option := range options {
		option(m)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MCTS) validate() error {
	switch {
	case math.IsNaN(m.exploration) || math.IsInf(m.exploration, 0) || m.exploration <= 0:
		return fmt.Errorf("%w: exploration factor must be positive, got %v", ErrConfig, m.exploration)
	case m.episodes < 0:
		return fmt.Errorf("%w: negative episodes %d", ErrConfig, m.episodes)
	case m.duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrConfig, m.duration)
	case m.episodes == 0 && m.duration == 0:
		return fmt.Errorf("%w: must specify search episodes or duration", ErrConfig)
	case m.cutoff < 0:
		return fmt.Errorf("%w: negative cutoff %d", ErrConfig, m.cutoff)
	}
	return nil
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

func (m *MCTS) Seed() uint64 {
	return m.seed
}

// search is the state of one Run.
type search struct {
	*MCTS
	tree    *Tree
	source  *Source
	metrics metrics.Collector
}

// Run searches from state until the episode budget or the duration is exhausted,
// whichever comes first, or ctx is cancelled. The budget is checked between
// iterations only. A terminal state yields its outcome and an error wrapping ErrNoAction.
func (m *MCTS) Run(ctx context.Context, state game.State) (Result, error) {
	tree, err := newTree(state, m.capacity)
	if err != nil {
		return Result{}, err
	}
	s := &search{
		MCTS:    m,
		tree:    tree,
		source:  NewSource(m.seed),
		metrics: metrics.NewDummyCollector(),
	}
	if m.collectMetrics {
		s.metrics = metrics.NewCollector()
	}
	s.metrics.Start(m.exploration, m.cutoff, m.seed)

	if root := tree.Root(); root.Terminal {
		s.metrics.SetTree(tree.Size(), tree.MaxDepth())
		result := Result{
			StopReason: StopTerminal,
			Terminal:   true,
			Outcome:    root.Outcome,
			Nodes:      tree.Size(),
			Metric:     s.metrics.Complete(),
			Tree:       tree,
		}
		return result, fmt.Errorf("%w: root state is terminal", ErrNoAction)
	}

	iterations, reason, err := s.loop(ctx)
	if err != nil {
		return Result{}, err
	}
	s.metrics.SetTree(tree.Size(), tree.MaxDepth())

	children := tree.ChildStats(RootID)
	result := Result{
		Children:   children,
		PV:         tree.PrincipalVariation(),
		Iterations: iterations,
		Nodes:      tree.Size(),
		MaxDepth:   tree.MaxDepth(),
		StopReason: reason,
		Metric:     s.metrics.Complete(),
		Tree:       tree,
	}
	move, ok := s.recommend(children)
	if !ok {
		return result, fmt.Errorf("%w: root has no visited children after %d iterations (%v)", ErrNoAction, iterations, reason)
	}
	result.Move = move

	log.Debug().
		Str("move", move.String()).
		Int("iterations", iterations).
		Int("nodes", result.Nodes).
		Int("depth", result.MaxDepth).
		Stringer("stop", reason).
		Msg("search complete")
	return result, nil
}

func (s *search) loop(ctx context.Context) (int, StopReason, error) {
	var deadline time.Time
	if s.duration > 0 {
		deadline = time.Now().Add(s.duration)
	}

	for i := 0; ; i++ {
		if s.episodes > 0 && i >= s.episodes {
			return i, StopEpisodes, nil
		}
		// At least one iteration runs under a duration budget
		if i > 0 && !deadline.IsZero() && !time.Now().Before(deadline) {
			return i, StopDeadline, nil
		}
		if ctx.Err() != nil {
			return i, StopCancelled, nil
		}
		if err := s.iterate(); err != nil {
			return i, 0, fmt.Errorf("iteration %d: %w", i, err)
		}
	}
}

// iterate runs select, expand, simulate and backup once.
func (s *search) iterate() error {
	leaf := s.selectLeaf()
	node, err := s.expand(leaf)
	if err != nil {
		return err
	}
	outcome, perspective, full, err := s.rollout(node)
	if err != nil {
		return err
	}
	if full {
		s.metrics.AddFullPlayout()
	} else {
		s.metrics.AddCutoffPlayout()
	}
	s.backup(node, outcome, perspective)
	s.metrics.AddEpisode()
	return nil
}
