package game

import "errors"

// Any game that aims to be playable by an MCTS agent implements State (i.e. the searcher
// package only depends on this package, concrete games live in sub packages).

// Player identifies the side to move, numbered from 0.
type Player int

// Move is a single legal action. Implementations must be comparable.
type Move interface {
	String() string
}

// ErrIllegalMove is returned by State.Play for moves absent from LegalMoves.
var ErrIllegalMove = errors.New("illegal move")

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player to move in this state
	Player() Player
	// LegalMoves is non-empty unless the state is terminal
	LegalMoves() []Move
	// Play returns the successor state, it never mutates the receiver
	Play(Move) (State, error)
	IsTerminal() bool
	// Outcome is only meaningful for terminal states
	Outcome() Outcome
}

// Evaluates a non-terminal state (e.g. at a rollout cutoff) to a per-player outcome.
type Evaluate func(State) Outcome

// Neutral evaluates every state as a draw.
func Neutral(State) Outcome {
	return nil
}
