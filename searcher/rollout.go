package searcher

import (
	"fmt"

	"montecarlo/game"
)

// rollout plays uniformly random moves from id's state until a terminal state or the
// cutoff depth. It returns the outcome, the player to move in id's state (the
// perspective of the outcome) and whether a terminal state was reached.
func (s *search) rollout(id NodeID) (game.Outcome, game.Player, bool, error) {
	node := s.tree.arena.Get(id)
	if node.Terminal {
		return node.Outcome, node.Player, true, nil
	}

	state := node.State
	depth := 0
	for {
		if state.IsTerminal() {
			return state.Outcome(), node.Player, true, nil
		}
		if s.cutoff > 0 && depth >= s.cutoff {
			return s.evaluate(state), node.Player, false, nil
		}

		moves := state.LegalMoves()
		if len(moves) == 0 {
			return nil, 0, false, fmt.Errorf("%w: non-terminal state %v has no legal moves", ErrContractViolation, state)
		}
		move := moves[s.source.Intn(len(moves))] // Random rollout policy

		next, err := state.Play(move)
		if err != nil {
			return nil, 0, false, fmt.Errorf("%w: playing legal move %v: %w", ErrContractViolation, move, err)
		}
		state = next
		depth++
	}
}
