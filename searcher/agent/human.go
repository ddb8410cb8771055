package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"montecarlo/experiments/metrics"
	"montecarlo/game"
	"montecarlo/searcher"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent reading moves from in, written as the moves print
// themselves (e.g. "b2" or "0:2"). Prompts and rejections go to out.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: state is terminal", searcher.ErrNoAction)
	}
	moves := state.LegalMoves()
	names := make([]string, len(moves))
	for i, move := range moves {
		names[i] = move.String()
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, metrics.SearchMetric{}, err
		}
		fmt.Fprintf(a.out, "%v\nplayer %d, your move [%s]: ", state, state.Player(), strings.Join(names, " "))
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return nil, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
			}
			return nil, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", io.ErrUnexpectedEOF)
		}

		input := strings.ToLower(strings.TrimSpace(a.in.Text()))
		for i, name := range names {
			if strings.ToLower(name) == input {
				return moves[i], metrics.SearchMetric{}, nil
			}
		}
		fmt.Fprintf(a.out, "illegal move %q\n", input)
	}
}
