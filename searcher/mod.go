// Package searcher implements a game-agnostic Monte Carlo Tree Search.
//
// Every search owns a single Arena of nodes addressed by NodeID and a single seeded
// Source of randomness. One iteration selects a node with UCT, expands one untried
// move, plays a uniformly random rollout and backs the outcome up to the root.
// Searches are single-threaded; run independent searches in parallel by giving each
// its own MCTS seed (see searcher/agent).
package searcher

import "errors"

var (
	// ErrConfig reports an invalid option, detected before any iteration runs.
	ErrConfig = errors.New("invalid search configuration")
	// ErrContractViolation reports a game.State that broke its contract, e.g. a
	// non-terminal state without legal moves. The search is aborted.
	ErrContractViolation = errors.New("game state contract violation")
	// ErrNoAction reports that the root offers no move to recommend.
	ErrNoAction = errors.New("no action available")
)

const DefaultArenaCapacity = 1024

// NoCutoff plays rollouts until a terminal state.
const NoCutoff = 0
