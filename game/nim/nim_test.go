package nim

import (
	"testing"

	"montecarlo/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejecting invalid setups", func(t *testing.T) {
		_, err := New(1, 3)
		require.Error(t, err, "Nim needs at least two players")

		_, err = New(2, -1)
		require.Error(t, err, "Heaps cannot be negative")

		_, err = Parse(2, "1,x")
		require.Error(t, err, "Heaps must be numbers")
	})

	t.Run("parsing heaps", func(t *testing.T) {
		s, err := Parse(3, "1, 2,3")

		require.NoError(t, err)
		require.Equal(t, "1,2,3", s.String())
		require.Equal(t, 3, s.Players())
		require.Len(t, s.LegalMoves(), 6)
	})
}

func TestPlay(t *testing.T) {
	t.Run("turns rotate through all players", func(t *testing.T) {
		start, err := New(3, 5)
		require.NoError(t, err)

		var s game.State = start

		for _, want := range []game.Player{0, 1, 2, 0} {
			require.Equal(t, want, s.Player())
			s, err = s.Play(Move{Heap: 0, Take: 1})
			require.NoError(t, err)
		}
	})

	t.Run("taking the last object wins", func(t *testing.T) {
		s, err := New(3, 1, 1)
		require.NoError(t, err)

		next, err := s.Play(Move{Heap: 0, Take: 1})
		require.NoError(t, err)
		require.False(t, next.IsTerminal())

		last, err := next.Play(Move{Heap: 1, Take: 1})
		require.NoError(t, err)

		require.True(t, last.IsTerminal())
		require.Equal(t, game.Outcome{-1, 1, -1}, last.Outcome(), "Player 1 took the last object")
	})

	t.Run("rejecting a move larger than the heap", func(t *testing.T) {
		s, err := New(2, 2)
		require.NoError(t, err)

		_, err = s.Play(Move{Heap: 0, Take: 3})

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, "2", s.String(), "Original state should be unchanged")
	})
}
