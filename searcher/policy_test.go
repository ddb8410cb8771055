package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCT(t *testing.T) {
	t.Run("scoring a child visited 3 of 10 times", func(t *testing.T) {
		got := UCT(1.5, 3, 10, 1.4)

		require.InDelta(t, 1.727, got, 1e-3, "Should be 1.5/3 + 1.4*sqrt(ln(10)/3)")
	})

	t.Run("single parent visit leaves only the mean", func(t *testing.T) {
		require.Equal(t, -1.0, UCT(-1, 1, 1, 2.0), "ln(1) should cancel exploration")
	})

	t.Run("exploration scales linearly with C", func(t *testing.T) {
		bonus := func(c float64) float64 { return UCT(0, 4, 50, c) }

		require.InDelta(t, 2*bonus(0.7), bonus(1.4), 1e-12)
		require.InDelta(t, math.Sqrt(math.Log(50)/4), bonus(1), 1e-12)
	})

	t.Run("less visited siblings get a larger bonus", func(t *testing.T) {
		// same mean of 0.5, so only the exploration term differs
		rare := UCT(2, 4, 100, 1.4)
		common := UCT(20, 40, 100, 1.4)

		require.Greater(t, rare, common)
	})

	t.Run("bonus grows as the parent is visited more", func(t *testing.T) {
		require.Greater(t, UCT(3, 10, 1000, 1.4), UCT(3, 10, 100, 1.4))
	})

	t.Run("scoring an unvisited child panics", func(t *testing.T) {
		require.Panics(t, func() { UCT(0, 0, 10, 1.4) })
	})

	t.Run("scoring under an unvisited parent panics", func(t *testing.T) {
		require.Panics(t, func() { newUCT(1.4, 0) })
	})
}
