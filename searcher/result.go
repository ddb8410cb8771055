package searcher

import (
	"montecarlo/experiments/metrics"
	"montecarlo/game"
)

// ChildStat summarizes one root child.
type ChildStat struct {
	Move   game.Move
	Visits int
	Mean   float64
}

// StopReason tells why the search loop ended.
type StopReason int

const (
	StopEpisodes StopReason = iota
	StopDeadline
	StopCancelled
	StopTerminal
)

func (r StopReason) String() string {
	switch r {
	case StopEpisodes:
		return "episodes"
	case StopDeadline:
		return "deadline"
	case StopCancelled:
		return "cancelled"
	case StopTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

type Result struct {
	Move       game.Move // recommended root move, nil when Terminal
	Children   []ChildStat
	PV         []game.Move
	Iterations int
	Nodes      int
	MaxDepth   int
	StopReason StopReason
	Terminal   bool
	Outcome    game.Outcome // outcome of a terminal root
	Metric     metrics.SearchMetric
	Tree       *Tree
}

// Visits returns the visit count of move at the root, 0 if it was never expanded.
func (r Result) Visits(move game.Move) int {
	for _, c := range r.Children {
		if c.Move == move {
			return c.Visits
		}
	}
	return 0
}

// recommend picks the most visited root child, then the higher mean, then the tie-break.
func (s *search) recommend(children []ChildStat) (game.Move, bool) {
	best := mostVisited(children)
	switch {
	case len(best) == 0:
		return nil, false
	case len(best) == 1 || s.tieBreak == TieBreakFirst:
		return children[best[0]].Move, true
	default:
		return children[best[s.source.Intn(len(best))]].Move, true
	}
}
