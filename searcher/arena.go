package searcher

import "montecarlo/game"

// NodeID addresses a node in its Arena. IDs are never reused while the arena lives.
type NodeID int32

const (
	NoNode NodeID = -1
	RootID NodeID = 0 // the root is always the first allocation
)

// Arena owns every node of one search. Nodes link to each other only through
// NodeIDs and are never removed individually, the whole arena is dropped with
// the search.
type Arena struct {
	nodes []Node
}

func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultArenaCapacity
	}
	return &Arena{nodes: make([]Node, 0, capacity)}
}

// Allocate appends a node for state under parent (NoNode for the root) and returns its ID.
// Terminal nodes keep no untried moves and record the state's outcome.
func (a *Arena) Allocate(state game.State, parent NodeID, player game.Player, terminal bool, untried []game.Move) NodeID {
	node := Node{
		State:    state,
		Parent:   parent,
		Player:   player,
		Actor:    player,
		Terminal: terminal,
	}
	if parent != NoNode {
		p := a.Mut(parent)
		node.Actor = p.Player
		node.Depth = p.Depth + 1
	}
	if terminal {
		node.Outcome = state.Outcome()
	} else {
		node.Untried = append([]game.Move(nil), untried...)
	}

	a.nodes = append(a.nodes, node)
	return NodeID(len(a.nodes) - 1)
}

// Get returns a copy of the node, its slices must be treated as read-only.
func (a *Arena) Get(id NodeID) Node {
	return a.nodes[id]
}

// Mut returns the node for modification. The pointer is invalidated by the next Allocate.
func (a *Arena) Mut(id NodeID) *Node {
	return &a.nodes[id]
}

func (a *Arena) Len() int {
	return len(a.nodes)
}
