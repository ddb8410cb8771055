package searcher

import (
	"fmt"

	"montecarlo/game"
)

// Rewarder converts a rollout outcome into the reward credited to a node. The
// perspective is the player to move at the simulated node, actor is the player
// whose choice the credited node represents.
type Rewarder interface {
	Reward(outcome game.Outcome, perspective, actor game.Player) float64
}

// ZeroSum reads a single scalar from the perspective player's entry and negates it
// for nodes chosen by anyone else. Suited for two-player zero-sum games.
type ZeroSum struct{}

func (ZeroSum) Reward(outcome game.Outcome, perspective, actor game.Player) float64 {
	r := outcome.Reward(perspective)
	if actor == perspective {
		return r
	}
	return -r
}

// PerPlayer credits every node with its own actor's entry of the outcome vector.
type PerPlayer struct{}

func (PerPlayer) Reward(outcome game.Outcome, _, actor game.Player) float64 {
	return outcome.Reward(actor)
}

// backup walks from id to the root, counting a visit and crediting the reward at every node.
func (s *search) backup(id NodeID, outcome game.Outcome, perspective game.Player) {
	for id != NoNode {
		node := s.tree.arena.Mut(id)
		node.Visits++
		node.Rewards += s.rewarder.Reward(outcome, perspective, node.Actor)
		id = node.Parent
	}
}

// ParseRewarder maps "zero-sum" (the default for an empty name) and "per-player" to a Rewarder.
func ParseRewarder(name string) (Rewarder, error) {
	switch name {
	case "", "zero-sum":
		return ZeroSum{}, nil
	case "per-player":
		return PerPlayer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown rewarder %q", ErrConfig, name)
	}
}
