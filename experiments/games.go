package experiments

import (
	"fmt"

	"montecarlo/game"
	"montecarlo/game/nim"
	"montecarlo/game/tictactoe"
)

// NewGame builds the starting state of a reference game, an empty position selects
// the standard start ("3,4,5" for nim).
func NewGame(name, position string, players int) (game.State, error) {
	switch name {
	case "tictactoe":
		if position == "" {
			return tictactoe.New(), nil
		}
		return tictactoe.Parse(position)
	case "nim":
		if position == "" {
			position = "3,4,5"
		}
		if players == 0 {
			players = 2
		}
		return nim.Parse(players, position)
	default:
		return nil, fmt.Errorf("unknown game %q", name)
	}
}
