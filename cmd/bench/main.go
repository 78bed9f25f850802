package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/ciricc/go-vlm-bench/internal/bench"
	"github.com/ciricc/go-vlm-bench/internal/vlm"
)

func main() {
	var (
		modelPath = flag.String("model", "", "path to model checkpoint directory")
		imgDir    = flag.String("img-dir", "", "directory with images to benchmark")
		device    = flag.String("device", "cuda", "device to use (cuda/cpu/mps)")
	)
	flag.Parse()

	if *modelPath == "" {
		fatalf("--model is required")
	}
	if *imgDir == "" {
		fatalf("--img-dir is required")
	}

	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	)

	runner := bench.NewRunner(vlm.Build, logger)

	if _, err := runner.Run(context.Background(), *modelPath, *imgDir, *device); err != nil {
		fatalf("benchmark failed: %v", err)
	}
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
