package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
)

func main() {
	configPath := flag.String("config", "", "YAML file with game rules. Defaults are used when empty.")
	seed := flag.Uint64("seed", 0, "Seed for piece draws and the autoplayer. 0 picks one from the clock.")
	games := flag.Int("games", 10, "Number of games to simulate.")
	maxTicks := flag.Int("max-ticks", 100000, "Tick limit per game.")
	step := flag.Duration("step", 20*time.Millisecond, "Game time advanced per tick.")
	realtime := flag.Bool("realtime", false, "Play a single game in real time, one tick per step.")
	flag.Parse()

	_ = godotenv.Load()
	setupLogging(os.Getenv("BLOCKFALL_LOG_LEVEL"))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	game, err := engine.New(cfg,
		engine.WithRandomizer(rand.New(rand.NewPCG(*seed, 1))),
		engine.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}
	player := newAutoplayer(rand.New(rand.NewPCG(*seed, 2)))

	report := &Report{
		Seed:     *seed,
		Config:   cfg,
		Step:     *step,
		MaxTicks: *maxTicks,
		Realtime: *realtime,
	}

	startTime := time.Now()
	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		log.Info().Dur("step", *step).Msg("playing in real time, interrupt to stop")
		if err := game.Run(ctx, *step, player); err != nil {
			log.Warn().Err(err).Msg("game interrupted")
		}
		report.Games = append(report.Games, player.result(game))
	} else {
		log.Info().Int("games", *games).Uint64("seed", *seed).Msg("starting simulation")
		for i := range *games {
			if i > 0 {
				game.Reset()
				player.reset()
			}
			result := playGame(game, player, *step, *maxTicks)
			log.Debug().
				Int("game", i+1).
				Uint64("points", result.Score.Points).
				Int("ticks", result.Ticks).
				Msg("game finished")
			report.Games = append(report.Games, result)
		}
	}
	report.TotalTime = time.Since(startTime)
	report.Stats = game.Stats()
	report.Finalize()

	fmt.Println()
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
}

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// playGame ticks game until it ends or maxTicks is reached.
func playGame(game *engine.Engine, player *autoplayer, step time.Duration, maxTicks int) GameResult {
	for player.ticks < maxTicks && !game.GameOver() {
		player.HandleEvents(game.Tick(step, player.Poll()))
	}
	return player.result(game)
}
