package engine

import (
	"context"
	"fmt"
	"time"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher/agent"
	"montecarlo/utils"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	agents   []agent.Agent
	initial  game.State
	maxMoves int
}

// LocalEngine plays agents against each other in process, agents[i] moves for player i.
func LocalEngine(agents []agent.Agent, initial game.State) (Engine, error) {
	if len(agents) < 2 {
		return nil, fmt.Errorf("%w: need at least two agents, got %d", ErrPlayers, len(agents))
	}
	return &localEngine{agents: agents, initial: initial, maxMoves: MaxMoves}, nil
}

func (e *localEngine) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	state := e.initial
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(state.Player()),
		Winner:         -1,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %d is starting", state.Player())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !state.IsTerminal() && step < e.maxMoves {
		player := state.Player()
		if int(player) < 0 || int(player) >= len(e.agents) {
			return nil, gameMetric, moveMetrics, fmt.Errorf("%w: no agent for player %d", ErrPlayers, player)
		}

		move, searchMetric, err := e.agents[player].FindMove(ctx, state)
		if err != nil {
			return nil, gameMetric, moveMetrics, fmt.Errorf("player %d at move %d: %w", player, step+1, err)
		}
		if !utils.Contains(state.LegalMoves(), move) {
			log.Warn().Msgf("player %d returned illegal move %v, forcing the first legal move", player, move)
			move = state.LegalMoves()[0]
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		state, err = state.Play(move)
		if err != nil {
			return nil, gameMetric, moveMetrics, fmt.Errorf("player %d playing %v: %w", player, move, err)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	if !state.IsTerminal() {
		log.Info().Msgf("stopped after %d moves without a result", step)
		return nil, gameMetric, moveMetrics, nil
	}
	outcome := state.Outcome()
	if winner, ok := outcome.Winner(); ok {
		gameMetric.Winner = int(winner)
	}
	log.Info().Msgf("game over after %d moves, winner %d", step, gameMetric.Winner)
	return outcome, gameMetric, moveMetrics, nil
}
