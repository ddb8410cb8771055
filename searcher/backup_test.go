package searcher

import (
	"testing"

	"montecarlo/game"
	"montecarlo/game/nim"
	"montecarlo/game/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestZeroSum(t *testing.T) {
	rewarder := ZeroSum{}
	outcome := game.Win(0, 2)

	t.Run("perspective player's own nodes", func(t *testing.T) {
		require.Equal(t, 1.0, rewarder.Reward(outcome, 0, 0))
		require.Equal(t, -1.0, rewarder.Reward(outcome, 1, 1))
	})

	t.Run("opponent's nodes are negated", func(t *testing.T) {
		require.Equal(t, -1.0, rewarder.Reward(outcome, 0, 1))
		require.Equal(t, 1.0, rewarder.Reward(outcome, 1, 0))
	})

	t.Run("neutral outcome", func(t *testing.T) {
		require.Equal(t, 0.0, rewarder.Reward(nil, 0, 1))
	})
}

func TestPerPlayer(t *testing.T) {
	t.Run("each actor reads its own entry", func(t *testing.T) {
		rewarder := PerPlayer{}
		outcome := game.Outcome{-1, 1, 0.5}

		require.Equal(t, -1.0, rewarder.Reward(outcome, 1, 0))
		require.Equal(t, 1.0, rewarder.Reward(outcome, 0, 1))
		require.Equal(t, 0.5, rewarder.Reward(outcome, 0, 2))
	})
}

func TestBackup(t *testing.T) {
	threePlayerPath := func(t *testing.T, rewarder Rewarder) (*search, []NodeID) {
		start, err := nim.New(3, 3)
		require.NoError(t, err)
		s := newTestSearch(t, start, WithExpansionOrder(ExpandInOrder), WithRewarder(rewarder))
		child, err := s.expand(RootID)
		require.NoError(t, err)
		grandChild, err := s.expand(child)
		require.NoError(t, err)
		return s, []NodeID{RootID, child, grandChild}
	}

	t.Run("visits are counted along the path", func(t *testing.T) {
		s, path := threePlayerPath(t, PerPlayer{})

		s.backup(path[2], game.Win(0, 3), 2)

		for _, id := range path {
			require.Equal(t, 1, s.tree.Node(id).Visits)
		}
	})

	t.Run("per player rewards in a three player game", func(t *testing.T) {
		s, path := threePlayerPath(t, PerPlayer{})

		s.backup(path[2], game.Win(0, 3), 2)

		// root and child are chosen by player 0, the grandchild by player 1
		require.Equal(t, 1.0, s.tree.Node(path[0]).Rewards)
		require.Equal(t, 1.0, s.tree.Node(path[1]).Rewards)
		require.Equal(t, game.Player(1), s.tree.Node(path[2]).Actor)
		require.Equal(t, -1.0, s.tree.Node(path[2]).Rewards)
	})

	t.Run("zero sum rewards flip for other actors", func(t *testing.T) {
		s, path := threePlayerPath(t, ZeroSum{})

		s.backup(path[2], game.Win(0, 3), 2) // player 2 lost

		require.Equal(t, 1.0, s.tree.Node(path[1]).Rewards)
		require.Equal(t, 1.0, s.tree.Node(path[2]).Rewards)
	})

	t.Run("two player conventions agree", func(t *testing.T) {
		for _, rewarder := range []Rewarder{ZeroSum{}, PerPlayer{}} {
			s := newTestSearch(t, tictactoe.New(), WithRewarder(rewarder))
			child, err := s.expand(RootID)
			require.NoError(t, err)

			s.backup(child, game.Win(tictactoe.X, 2), tictactoe.O)

			require.Equal(t, 1.0, s.tree.Node(child).Rewards, "X chose the child and won")
		}
	})
}

func TestRollout(t *testing.T) {
	t.Run("terminal node returns its outcome without drawing", func(t *testing.T) {
		s := newTestSearch(t, fanState(1), WithSeed(7))
		child, err := s.expand(RootID) // single move, no draw
		require.NoError(t, err)

		outcome, _, full, err := s.rollout(child)

		require.NoError(t, err)
		require.True(t, full)
		require.Equal(t, game.Draw(2), outcome)
		require.Equal(t, NewSource(7).Intn(1000), s.source.Intn(1000), "The source should be untouched")
	})

	t.Run("random playout reaches a terminal state", func(t *testing.T) {
		s := newTestSearch(t, tictactoe.New())

		outcome, perspective, full, err := s.rollout(RootID)

		require.NoError(t, err)
		require.True(t, full)
		require.Len(t, outcome, 2)
		require.Equal(t, tictactoe.X, perspective)
	})

	t.Run("cutoff resolves with the evaluation function", func(t *testing.T) {
		var evaluated game.State
		evaluate := func(state game.State) game.Outcome {
			evaluated = state
			return game.Win(1, 2)
		}
		s := newTestSearch(t, banditState{arm: armA, player: 1}, WithCutoff(3), WithEvaluationFn(evaluate))

		outcome, perspective, full, err := s.rollout(RootID)

		require.NoError(t, err)
		require.False(t, full)
		require.Equal(t, game.Win(1, 2), outcome)
		require.Equal(t, game.Player(1), perspective)
		require.Equal(t, 3, evaluated.(banditState).depth, "Should stop after cutoff moves")
	})

	t.Run("cutoff is neutral by default", func(t *testing.T) {
		s := newTestSearch(t, banditState{}, WithCutoff(1))

		outcome, _, full, err := s.rollout(RootID)

		require.NoError(t, err)
		require.False(t, full)
		require.Nil(t, outcome)
	})

	t.Run("non-terminal state without moves violates the contract", func(t *testing.T) {
		stuck := &mockState{name: "stuck"}
		mid := &mockState{name: "mid", player: 1, moves: []game.Move{armB}, next: map[game.Move]*mockState{armB: stuck}}
		root := &mockState{name: "root", moves: []game.Move{armA}, next: map[game.Move]*mockState{armA: mid}}
		s := newTestSearch(t, root)
		child, err := s.expand(RootID)
		require.NoError(t, err)

		_, _, _, err = s.rollout(child)

		require.ErrorIs(t, err, ErrContractViolation)
	})
}

func TestParseRewarder(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for name, want := range map[string]Rewarder{"": ZeroSum{}, "zero-sum": ZeroSum{}, "per-player": PerPlayer{}} {
			got, err := ParseRewarder(name)
			require.NoError(t, err)
			require.Equal(t, want, got, name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseRewarder("minimax")
		require.ErrorIs(t, err, ErrConfig)
	})
}
