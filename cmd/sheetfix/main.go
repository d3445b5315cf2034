// sheetfix runs the guarded heuristic layout correction against one produced
// XLSX file. Exit code 0 whether or not the correction applied; only hard
// failures (bad flags, unreadable rules) are fatal, matching the guard's
// never-abort contract.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/tabuflow/convert-core/internal/common"
	"github.com/tabuflow/convert-core/internal/rules"
	"github.com/tabuflow/convert-core/internal/sheetfix"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		file  = flag.String("file", "", "spreadsheet to correct (required)")
		rpath = flag.String("rules", os.Getenv("RULES_PATH"), "optional rules overlay YAML")
	)
	flag.Parse()

	if *file == "" {
		logger.Error("usage", "cmd", "sheetfix -file <xlsx> [-rules <yaml>]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config invalid", "error", err)
		os.Exit(1)
	}

	rs, err := rules.Load(*rpath, logger)
	if err != nil {
		logger.Error("load rules", "error", err)
		os.Exit(1)
	}

	guard := sheetfix.NewGuard(sheetfix.Config{
		Enabled: cfg.Correction.Enabled,
		MaxRows: cfg.Correction.MaxRows,
		MaxCols: cfg.Correction.MaxCols,
	}, rs, logger)

	start := time.Now()
	out := guard.ApplyIfEligible(*file)
	logger.Info("correction finished",
		"file", *file,
		"applied", out.Applied,
		"error", out.Err,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
