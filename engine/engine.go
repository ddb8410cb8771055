package engine

import (
	"context"
	"errors"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
)

const MaxMoves = 10000

var ErrPlayers = errors.New("agents do not match the players")

type Engine interface {
	// Run plays a game till a terminal state or MaxMoves is reached. An unfinished game
	// has a nil outcome.
	Run(ctx context.Context) (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
