package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chushaa/MinMaxAlgorithm/internal/logger"
	"github.com/chushaa/MinMaxAlgorithm/services/bench"
)

func main() {
	games := flag.Int("games", 20, "games per search variant")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for opening tie-breaks")
	verbose := flag.Bool("v", false, "log per-variant summaries to stderr")
	flag.Parse()

	if *games < 0 {
		fmt.Fprintln(os.Stderr, "-games must not be negative")
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	ctx := logger.NewContext(context.Background(), logger.NewWithWriter(os.Stderr, level))

	report, err := bench.Run(ctx, bench.Options{
		Games:    *games,
		Seed:     *seed,
		Progress: os.Stderr,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(report)
}
