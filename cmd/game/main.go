package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/services/game"
	"github.com/chushaa/MinMaxAlgorithm/services/match"
)

var errUsage = errors.New("usage: game [-log file] [-think duration] [mode algorithm]")

func main() {
	logFile := flag.String("log", "", "write debug logs to this file")
	think := flag.Duration("think", 400*time.Millisecond, "minimum time a computer move stays on screen")
	flag.Parse()

	if err := run(*logFile, *think, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) || errors.Is(err, match.ErrBadMode) || errors.Is(err, match.ErrBadAlgorithm) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(logFile string, think time.Duration, args []string) error {
	log := logger.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()

		log = logger.NewWithWriter(f, slog.LevelDebug)
	}

	// Optional "mode algorithm" arguments skip the settings menu.
	var cfg *match.Config
	if len(args) > 0 {
		if len(args) != 2 {
			return errUsage
		}

		c, err := match.ParseArgs(args[0], args[1])
		if err != nil {
			return err
		}
		cfg = &c
	}

	ctx := logger.NewContext(context.Background(), log)

	gameService := game.New(think)
	return gameService.Play(ctx, cfg)
}
