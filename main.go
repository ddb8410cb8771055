package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"montecarlo/config"
	"montecarlo/engine"
	"montecarlo/experiments"
	"montecarlo/searcher"
	"montecarlo/searcher/agent"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults are used when empty")
	mode := flag.String("mode", "search", "search, play or experiment")
	gameName := flag.String("game", "", "Game to play: tictactoe or nim")
	position := flag.String("position", "", "Starting position, e.g. x../.o./... or 3,4,5")
	episodes := flag.Int("episodes", 0, "Number of episodes per search")
	duration := flag.Duration("duration", 0, "Duration of each search")
	seed := flag.Uint64("seed", 0, "Seed of the search")
	human := flag.Int("human", -1, "Player controlled from stdin in play mode, -1 for self-play")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	// Flags set on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "game":
			cfg.Game.Name = *gameName
		case "position":
			cfg.Game.Position = *position
		case "episodes":
			cfg.Search.Episodes = *episodes
		case "duration":
			cfg.Search.Duration = *duration
		case "seed":
			cfg.Search.Seed = *seed
		}
	})
	setupLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "search":
		err = runSearch(ctx, cfg)
	case "play":
		err = runPlay(ctx, cfg, *human)
	case "experiment":
		err = runExperiment(ctx, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("failed")
	}
}

func setupLogger(c config.LogConfig) {
	level, err := c.ZerologLevel()
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func runSearch(ctx context.Context, cfg config.Config) error {
	state, err := experiments.NewGame(cfg.Game.Name, cfg.Game.Position, cfg.Game.Players)
	if err != nil {
		return err
	}
	mcts, err := cfg.Search.MCTS()
	if err != nil {
		return err
	}

	result, err := mcts.Run(ctx, state)
	out := termenv.NewOutput(os.Stdout)
	if result.Terminal {
		fmt.Fprintf(out, "%v is terminal with outcome %v\n", state, result.Outcome)
		return nil
	}
	if err != nil {
		return err
	}
	printResult(out, result)
	return nil
}

func printResult(out *termenv.Output, result searcher.Result) {
	fmt.Fprintf(out, "%-8s %8s %8s\n", "move", "visits", "mean")
	for _, child := range result.Children {
		row := fmt.Sprintf("%-8s %8d %8.3f", child.Move, child.Visits, child.Mean)
		if child.Move == result.Move {
			fmt.Fprintln(out, out.String(row).Foreground(out.Color("2")).Bold())
			continue
		}
		fmt.Fprintln(out, row)
	}

	pv := make([]string, len(result.PV))
	for i, move := range result.PV {
		pv[i] = move.String()
	}
	fmt.Fprintf(out, "bestmove %s pv %s\n", out.String(result.Move.String()).Bold(), strings.Join(pv, " "))
	fmt.Fprintf(out, "iterations %d nodes %d depth %d stop %v\n",
		result.Iterations, result.Nodes, result.MaxDepth, result.StopReason)
}

// runPlay lets one search agent per player play a game against the others, the
// human player (if any) enters moves on stdin.
func runPlay(ctx context.Context, cfg config.Config, human int) error {
	state, err := experiments.NewGame(cfg.Game.Name, cfg.Game.Position, cfg.Game.Players)
	if err != nil {
		return err
	}
	players := max(cfg.Game.Players, 2)
	agents := make([]agent.Agent, players)
	for i := range agents {
		if i == human {
			agents[i] = agent.NewHumanAgent(os.Stdin, os.Stdout)
			continue
		}
		search := cfg.Search
		search.Seed += uint64(i)
		mcts, err := search.MCTS()
		if err != nil {
			return err
		}
		agents[i] = agent.NewEvaluationAgent(mcts)
	}

	e, err := engine.LocalEngine(agents, state)
	if err != nil {
		return err
	}
	outcome, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)
	for _, m := range moveMetrics {
		fmt.Fprintf(out, "%3d. player %d plays %s\n", m.Step, m.Player, m.Move)
	}
	result := "draw"
	if winner, ok := outcome.Winner(); ok {
		result = fmt.Sprintf("player %d wins", winner)
	} else if outcome == nil {
		result = "unfinished"
	}
	fmt.Fprintf(out, "%s after %d moves in %v\n", out.String(result).Bold(), gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func runExperiment(ctx context.Context, cfg config.Config) error {
	exp, err := cfg.BuildExperiment()
	if err != nil {
		return err
	}
	dir, err := experiments.Run(ctx, exp)
	if ctx.Err() != nil {
		log.Warn().Msg("experiment interrupted")
	}
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment stored")
	return nil
}
