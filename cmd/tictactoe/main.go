package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/services/match"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Tic Tac Toe game mode and algorithm selector.

usage: tictactoe [-v] mode algorithm

  mode       1 for Human vs Computer, 2 for Computer vs Computer
  algorithm  x for Minimax, o for Minimax with Alpha-Beta Pruning

`)
	flag.PrintDefaults()
}

func main() {
	verbose := flag.Bool("v", false, "log search details to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := match.ParseArgs(flag.Arg(0), flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.NewWithWriter(os.Stderr, level)
	ctx := logger.NewContext(context.Background(), log)

	fmt.Println(cfg.Describe())

	x, o := cfg.Players(os.Stdin, os.Stdout)
	if _, err := match.New(os.Stdout).Play(ctx, x, o); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
