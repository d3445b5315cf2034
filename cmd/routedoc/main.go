// routedoc prints the routing decision for one PDF: processor, category,
// layout override and credit quote, as JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tabuflow/convert-core/internal/common"
	"github.com/tabuflow/convert-core/internal/pipeline"
	"github.com/tabuflow/convert-core/internal/rules"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		file  = flag.String("file", "", "PDF to route (required)")
		hint  = flag.String("hint", "", "optional document type hint, e.g. 'bank statement'")
		rpath = flag.String("rules", os.Getenv("RULES_PATH"), "optional rules overlay YAML")
	)
	flag.Parse()

	if *file == "" {
		logger.Error("usage", "cmd", "routedoc -file <pdf> [-hint <text>] [-rules <yaml>]")
		os.Exit(2)
	}

	rs, err := rules.Load(*rpath, logger)
	if err != nil {
		logger.Error("load rules", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = common.WithRequestID(ctx, uuid.NewString())

	router := pipeline.NewRouter(logger, nil, nil, nil, nil, rs)

	start := time.Now()
	decision, err := router.Route(ctx, *file, *hint)
	if err != nil {
		logger.Error("routing failed", "file", *file, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(decision); err != nil {
		logger.Error("encode decision", "error", err)
		os.Exit(1)
	}
}
