package searcher

import (
	"fmt"

	"montecarlo/game"
)

// Tree is the search tree of one decision, stored in an Arena.
type Tree struct {
	arena    *Arena
	maxDepth int
}

func newTree(state game.State, capacity int) (*Tree, error) {
	t := &Tree{arena: NewArena(capacity)}
	if _, err := t.allocate(state, NoNode); err != nil {
		return nil, err
	}
	return t, nil
}

// allocate validates state and adds it under parent. Nothing is allocated on error.
func (t *Tree) allocate(state game.State, parent NodeID) (NodeID, error) {
	terminal := state.IsTerminal()
	var moves []game.Move
	if !terminal {
		moves = state.LegalMoves()
		if len(moves) == 0 {
			return NoNode, fmt.Errorf("%w: non-terminal state %v has no legal moves", ErrContractViolation, state)
		}
	}

	id := t.arena.Allocate(state, parent, state.Player(), terminal, moves)
	t.maxDepth = max(t.maxDepth, t.arena.Mut(id).Depth)
	return id, nil
}

func (t *Tree) Arena() *Arena {
	return t.arena
}

func (t *Tree) Root() Node {
	return t.arena.Get(RootID)
}

func (t *Tree) Node(id NodeID) Node {
	return t.arena.Get(id)
}

func (t *Tree) Size() int {
	return t.arena.Len()
}

func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// ChildStats lists the children of id in expansion order.
func (t *Tree) ChildStats(id NodeID) []ChildStat {
	node := t.arena.Mut(id)
	stats := make([]ChildStat, len(node.Children))
	for i, edge := range node.Children {
		child := t.arena.Mut(edge.Child)
		stats[i] = ChildStat{
			Move:   edge.Move,
			Visits: child.Visits,
			Mean:   child.Mean(),
		}
	}
	return stats
}

// PrincipalVariation follows the most visited child from the root, ties go to the
// higher mean and then to the earlier child.
func (t *Tree) PrincipalVariation() []game.Move {
	var pv []game.Move
	id := RootID
	for {
		best := mostVisited(t.ChildStats(id))
		if len(best) == 0 {
			return pv
		}
		edge := t.arena.Mut(id).Children[best[0]]
		pv = append(pv, edge.Move)
		id = edge.Child
	}
}

// mostVisited returns the indices of the visited children with the most visits and,
// among those, the highest mean.
func mostVisited(stats []ChildStat) []int {
	var best []int
	for i, s := range stats {
		if s.Visits == 0 {
			continue
		}
		if len(best) == 0 {
			best = append(best, i)
			continue
		}
		top := stats[best[0]]
		switch {
		case s.Visits > top.Visits || (s.Visits == top.Visits && s.Mean > top.Mean):
			best = append(best[:0], i)
		case s.Visits == top.Visits && s.Mean == top.Mean:
			best = append(best, i)
		}
	}
	return best
}
