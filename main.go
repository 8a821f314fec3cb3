package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/console"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/sim"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var simulate string
	flag.StringVar(&simulate, "simulate", "", `self-play instead of prompting: a secret word, "daily" or "all"`)
	flag.Parse()

	dict, err := words.LoadDictionary(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	table, err := words.LoadFrequencies(cfg.FreqFile)
	if err != nil {
		log.Warn().Err(err).Msg("continuing without usage frequencies")
		table = nil
	}
	log.Info().Int("words", len(dict)).Int("frequencies", len(table)).Msg("word data loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	game := sim.Game{Dict: dict, Table: table, Ranker: cfg.Ranker, MaxTurns: cfg.MaxTurns}

	switch simulate {
	case "":
		s := session.New(dict, table, cfg.Ranker)
		err = console.Run(ctx, s, os.Stdin, os.Stdout, console.Options{Color: cfg.Color && tty})
	case "all":
		var progress io.Writer
		if term.IsTerminal(int(os.Stderr.Fd())) {
			progress = os.Stderr
		}
		err = runAll(ctx, game, cfg.Ranker.Workers, progress)
	case "daily":
		secret, ok := sim.DailySecret(time.Now(), cfg.DailySalt, dict)
		if !ok {
			err = words.ErrEmptyDictionary
			break
		}
		err = runOne(ctx, game, secret, cfg.Color && tty)
	default:
		var secret feedback.Word
		if secret, err = feedback.ParseWord(simulate); err == nil {
			err = runOne(ctx, game, secret, cfg.Color && tty)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solver exited")
	}
}

func runOne(ctx context.Context, game sim.Game, secret feedback.Word, color bool) error {
	res, err := sim.Play(ctx, game, secret)
	if err != nil {
		return err
	}
	for _, obs := range res.Guesses {
		fmt.Println(console.Render(obs, color))
	}
	if res.Won {
		fmt.Printf("Solved %s in %d guesses\n", secret, res.Turns())
	} else {
		fmt.Printf("Failed to solve %s in %d guesses\n", secret, res.Turns())
	}
	return nil
}

func runAll(ctx context.Context, game sim.Game, workers int, progress io.Writer) error {
	sum, err := sim.PlayAll(ctx, game, workers, progress)
	if err != nil {
		return err
	}
	fmt.Printf("Won %d/%d games in %s, mean %.3f guesses\n", sum.Won, sum.Games, sum.Elapsed.Round(time.Millisecond), sum.Mean())
	for turns := 1; turns <= game.MaxTurns; turns++ {
		if n := sum.Histogram[turns]; n > 0 {
			fmt.Printf("%2d: %d\n", turns, n)
		}
	}
	for _, w := range sum.Failures {
		fmt.Println("failed:", w)
	}
	return nil
}
