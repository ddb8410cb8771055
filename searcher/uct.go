package searcher

import (
	"fmt"
	"math"
	"slices"
)

// selectLeaf descends from the root until a terminal node or a node with untried moves.
func (s *search) selectLeaf() NodeID {
	id := RootID
	for {
		node := s.tree.arena.Mut(id)
		if node.Terminal || !node.Expanded() || len(node.Children) == 0 {
			return id
		}
		id = s.selectChild(node)
	}
}

// selectChild picks an unvisited child if there is one, otherwise the child with the
// maximum UCT value.
func (s *search) selectChild(parent *Node) NodeID {
	var candidates []NodeID
	for _, edge := range parent.Children {
		if s.tree.arena.Mut(edge.Child).Visits == 0 {
			candidates = append(candidates, edge.Child)
		}
	}
	if len(candidates) > 0 {
		return s.pick(candidates)
	}

	policy := newUCT(s.exploration, parent.Visits)
	maxScore := math.Inf(-1)
	for _, edge := range parent.Children {
		child := s.tree.arena.Mut(edge.Child)
		score := policy.score(child.Rewards, child.Visits)
		switch {
		case score > maxScore:
			maxScore = score
			candidates = append(candidates[:0], edge.Child)
		case score == maxScore:
			candidates = append(candidates, edge.Child)
		}
	}
	return s.pick(candidates)
}

// pick resolves ties, the Source is only consumed when there is more than one candidate.
func (s *search) pick(candidates []NodeID) NodeID {
	if len(candidates) == 1 || s.tieBreak == TieBreakFirst {
		return candidates[0]
	}
	return candidates[s.source.Intn(len(candidates))]
}

// expand adds a child for one untried move of id and returns it. Terminal nodes are
// returned unchanged. The tree is only modified once the new state passed validation.
func (s *search) expand(id NodeID) (NodeID, error) {
	node := s.tree.arena.Mut(id)
	if node.Terminal || node.Expanded() {
		return id, nil
	}

	i := 0
	if s.order == ExpandRandom && len(node.Untried) > 1 {
		i = s.source.Intn(len(node.Untried))
	}
	move := node.Untried[i]

	state, err := node.State.Play(move)
	if err != nil {
		return NoNode, fmt.Errorf("%w: playing legal move %v: %w", ErrContractViolation, move, err)
	}
	child, err := s.tree.allocate(state, id)
	if err != nil {
		return NoNode, err
	}

	node = s.tree.arena.Mut(id) // allocation may have moved the arena
	node.Untried = slices.Delete(node.Untried, i, i+1)
	node.Children = append(node.Children, Edge{Move: move, Child: child})
	return child, nil
}
