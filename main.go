package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"draughts/engine"
	"draughts/policy"
	"draughts/tournament"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "league", "What to run: game, league, or bracket")
	configPath := flag.String("config", "", "Path to a YAML tournament config")
	seed := flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	player1 := flag.String("p1", "minimax", "Policy for player 1 in game mode")
	player2 := flag.String("p2", "mcts", "Policy for player 2 in game mode")
	showBoard := flag.Bool("show", false, "Print the final board in game mode")
	verbose := flag.Bool("v", false, "Log every game event")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg := tournament.DefaultConfig()
	if *configPath != "" {
		loaded, err := tournament.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	dispatcher := policy.NewDispatcher(rng, cfg.Params())

	switch *mode {
	case "game":
		runGame(dispatcher, rng, cfg, *player1, *player2, *showBoard)
	case "league":
		runLeague(dispatcher, rng, cfg)
	case "bracket":
		runBracket(dispatcher, rng, cfg)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func runGame(dispatcher *policy.Dispatcher, rng *rand.Rand, cfg tournament.Config, p1, p2 string, show bool) {
	id1, err := policy.ParseID(p1)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid player 1 policy")
	}
	id2, err := policy.ParseID(p2)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid player 2 policy")
	}

	e := engine.NewLocal(dispatcher, rng,
		engine.Player{Name: p1, Policy: id1},
		engine.Player{Name: p2, Policy: id2},
		engine.WithMaxMoves(cfg.MaxMoves))
	outcome := e.Run()

	if show {
		fmt.Print(engine.RenderBoard(&e.State.Board))
	}
	switch outcome.Winner {
	case 1:
		log.Info().Str("winner", p1).Int("moves", outcome.Moves).Msg("game over")
	case 2:
		log.Info().Str("winner", p2).Int("moves", outcome.Moves).Msg("game over")
	default:
		log.Info().Int("moves", outcome.Moves).Msg("game drawn")
	}
}

func runLeague(dispatcher *policy.Dispatcher, rng *rand.Rand, cfg tournament.Config) {
	players, err := cfg.Entrants()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid entrants")
	}

	league := tournament.NewLeague(dispatcher, rng, players, cfg.GamesPerPair, cfg.MaxMoves)
	standings := league.Run()

	for i, s := range standings {
		fmt.Printf("%2d. %-12s %5.1f pts  (%dW %dD %dL)\n", i+1, s.Player, s.Points, s.Wins, s.Draws, s.Losses)
	}
	persist(cfg, "league", league.Records(), standings)
}

func runBracket(dispatcher *policy.Dispatcher, rng *rand.Rand, cfg tournament.Config) {
	players, err := cfg.Entrants()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid entrants")
	}

	bracket := tournament.NewBracket(dispatcher, rng, players, cfg.MaxMoves)
	champion := bracket.Run()

	fmt.Printf("champion: %s\n", champion.Name)
	persist(cfg, "bracket", bracket.Records(), nil)
}

func persist(cfg tournament.Config, name string, records []tournament.GameRecord, standings []tournament.Standing) {
	writer, err := tournament.NewWriter(cfg.OutputDir, name)
	if err != nil {
		log.Error().Err(err).Msg("failed to create results writer")
		return
	}
	if err := writer.WriteGameRecords(records); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
	}
	if standings != nil {
		if err := writer.WriteStandings(standings); err != nil {
			log.Error().Err(err).Msg("failed to write standings")
		}
	}
	log.Info().Msg("stored results")
}
