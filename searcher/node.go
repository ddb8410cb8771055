package searcher

import "montecarlo/game"

// Edge links a parent to the child reached by Move.
type Edge struct {
	Move  game.Move
	Child NodeID
}

type Node struct {
	State    game.State
	Parent   NodeID
	Children []Edge      // appended in expansion order, never reordered
	Untried  []game.Move // moves not expanded yet, empty for terminal nodes
	Visits   int
	Rewards  float64     // accumulated from Actor's perspective
	Player   game.Player // player to move in State
	Actor    game.Player // player who chose this node: the parent's Player, the root's own Player
	Terminal bool
	Outcome  game.Outcome // fixed outcome of a terminal node
	Depth    int
}

// Mean is the average reward, 0 for an unvisited node.
func (n Node) Mean() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.Rewards / float64(n.Visits)
}

// Expanded reports whether every legal move has a child.
func (n Node) Expanded() bool {
	return len(n.Untried) == 0
}

func (n Node) IsRoot() bool {
	return n.Parent == NoNode
}
