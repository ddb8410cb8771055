package searcher

import (
	"fmt"
	"testing"

	"montecarlo/game"

	"github.com/stretchr/testify/require"
)

type mockMove string

func (m mockMove) String() string {
	return string(m)
}

// mockState is a hand-built game graph: Play follows next, unknown moves fail.
type mockState struct {
	name     string
	player   game.Player
	moves    []game.Move
	next     map[game.Move]*mockState
	terminal bool
	outcome  game.Outcome
}

func (m *mockState) Player() game.Player {
	return m.player
}

func (m *mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m *mockState) Play(move game.Move) (game.State, error) {
	next, ok := m.next[move]
	if !ok {
		return nil, fmt.Errorf("%w: %v in %s", game.ErrIllegalMove, move, m.name)
	}
	return next, nil
}

func (m *mockState) IsTerminal() bool {
	return m.terminal
}

func (m *mockState) Outcome() game.Outcome {
	return m.outcome
}

func (m *mockState) String() string {
	return m.name
}

// banditState offers two arms at the root, after which every state only allows waiting.
type banditState struct {
	arm    game.Move // nil at the root
	player game.Player
	depth  int
}

const (
	armA = mockMove("A")
	armB = mockMove("B")
	wait = mockMove("wait")
)

func (b banditState) Player() game.Player {
	return b.player
}

func (b banditState) LegalMoves() []game.Move {
	if b.arm == nil {
		return []game.Move{armA, armB}
	}
	return []game.Move{wait}
}

func (b banditState) Play(move game.Move) (game.State, error) {
	next := banditState{arm: b.arm, player: 1 - b.player, depth: b.depth + 1}
	switch {
	case b.arm == nil && (move == armA || move == armB):
		next.arm = move
	case b.arm != nil && move == wait:
	default:
		return nil, fmt.Errorf("%w: %v", game.ErrIllegalMove, move)
	}
	return next, nil
}

func (b banditState) IsTerminal() bool {
	return false
}

func (b banditState) Outcome() game.Outcome {
	return nil
}

func terminalState(name string, outcome game.Outcome) *mockState {
	return &mockState{name: name, terminal: true, outcome: outcome}
}

func TestArena(t *testing.T) {
	t.Run("allocating the root", func(t *testing.T) {
		arena := NewArena(0)
		state := banditState{}

		id := arena.Allocate(state, NoNode, 0, false, state.LegalMoves())

		require.Equal(t, RootID, id, "The root should be the first allocation")
		root := arena.Get(id)
		require.True(t, root.IsRoot())
		require.Equal(t, game.Player(0), root.Actor, "The root should act for its own player")
		require.Equal(t, 0, root.Depth)
		require.Len(t, root.Untried, 2)
		require.False(t, root.Expanded())
	})

	t.Run("children act for the parent's player", func(t *testing.T) {
		arena := NewArena(1)
		root := arena.Allocate(banditState{}, NoNode, 0, false, []game.Move{armA, armB})

		child := arena.Allocate(banditState{arm: armA, player: 1}, root, 1, false, []game.Move{wait})

		require.Equal(t, NodeID(1), child, "IDs should be allocated sequentially")
		node := arena.Get(child)
		require.Equal(t, root, node.Parent)
		require.Equal(t, game.Player(1), node.Player)
		require.Equal(t, game.Player(0), node.Actor)
		require.Equal(t, 1, node.Depth)
		require.Equal(t, 2, arena.Len())
	})

	t.Run("untried moves are copied", func(t *testing.T) {
		arena := NewArena(1)
		moves := []game.Move{armA, armB}

		id := arena.Allocate(banditState{}, NoNode, 0, false, moves)
		moves[0] = wait

		require.Equal(t, armA, arena.Get(id).Untried[0], "The arena should not alias the caller's slice")
	})

	t.Run("terminal nodes record the outcome", func(t *testing.T) {
		arena := NewArena(1)
		state := terminalState("end", game.Win(1, 2))

		id := arena.Allocate(state, NoNode, 0, true, []game.Move{armA})

		node := arena.Get(id)
		require.True(t, node.Terminal)
		require.Empty(t, node.Untried, "Terminal nodes should never have untried moves")
		require.Equal(t, game.Win(1, 2), node.Outcome)
	})
}

func TestNodeCopies(t *testing.T) {
	t.Run("reading a node straight from the arena", func(t *testing.T) {
		arena := NewArena(1)
		id := arena.Allocate(banditState{}, NoNode, 0, false, []game.Move{armA})
		arena.Mut(id).Visits = 2
		arena.Mut(id).Rewards = 1

		require.False(t, arena.Get(id).Expanded())
		require.True(t, arena.Get(id).IsRoot())
		require.InDelta(t, 0.5, arena.Get(id).Mean(), 1e-9)

		arena.Mut(id).Untried = nil
		require.True(t, arena.Get(id).Expanded())
	})
}

func TestNodeMean(t *testing.T) {
	t.Run("unvisited node", func(t *testing.T) {
		node := Node{}
		require.Equal(t, 0.0, node.Mean())
	})

	t.Run("visited node", func(t *testing.T) {
		node := Node{Visits: 4, Rewards: 3}
		require.InDelta(t, 0.75, node.Mean(), 1e-9)
	})
}
