// Package sheetfix is the one guarded hook between the classification
// subsystem and the rest of the conversion pipeline: after a spreadsheet has
// been produced, it decides whether to run heuristic layout corrections,
// snapshots the file first, and rolls back on failure. Disabling the guard
// disables the whole heuristic layer without touching call sites.
package sheetfix

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tabuflow/convert-core/internal/classify"
	"github.com/tabuflow/convert-core/internal/rules"
)

// Outcome reports one correction attempt. Err is empty when nothing went
// wrong; Applied is false for bypasses, ineligible categories and no-ops.
type Outcome struct {
	Applied bool
	Err     string
}

type Config struct {
	// Enabled gates the whole subsystem. When false ApplyIfEligible returns
	// immediately without touching the filesystem.
	Enabled bool
	// MaxRows/MaxCols bound the sheet region read back for re-classification.
	MaxRows int
	MaxCols int
}

// fixer mutates a spreadsheet file in place and reports whether anything
// changed. Swapped out in tests to exercise the rollback paths.
type fixer interface {
	Fix(path string) (changed bool, err error)
}

type Guard struct {
	cfg        Config
	classifier *classify.Classifier
	rules      *rules.Set
	fixer      fixer
	logger     *slog.Logger
}

func NewGuard(cfg Config, rs *rules.Set, logger *slog.Logger) *Guard {
	if rs == nil {
		rs = rules.Defaults()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = 100
	}
	if cfg.MaxCols <= 0 {
		cfg.MaxCols = 10
	}
	return &Guard{
		cfg:        cfg,
		classifier: classify.NewClassifier(rs),
		rules:      rs,
		fixer:      sheetFixer{},
		logger:     logger,
	}
}

// ApplyIfEligible classifies the spreadsheet's own text and, when the
// category is marked for correction, applies the heuristic fixes under a
// snapshot. Whatever happens, the target file ends up unchanged, improved,
// or restored; every internal failure is converted into a non-fatal Outcome
// because heuristic correction is an enhancement, not a requirement.
func (g *Guard) ApplyIfEligible(path string) Outcome {
	if !g.cfg.Enabled {
		return Outcome{}
	}
	if _, err := os.Stat(path); err != nil {
		return Outcome{Err: "not found"}
	}

	text, err := sheetText(path, g.cfg.MaxRows, g.cfg.MaxCols)
	if err != nil {
		g.logger.Warn("sheetfix.read.failed", "path", path, "error", err)
		return Outcome{Err: err.Error()}
	}
	res := g.classifier.Classify(text)
	if !g.rules.SheetFixEligible(res.Category) {
		g.logger.Debug("sheetfix.skip", "path", path, "category", res.Category)
		return Outcome{}
	}

	snap, err := takeSnapshot(path)
	if err != nil {
		return Outcome{Err: fmt.Sprintf("snapshot: %v", err)}
	}
	out := g.applyUnderSnapshot(path, snap)
	g.logger.Info("sheetfix.done",
		"path", path,
		"category", res.Category,
		"applied", out.Applied,
		"error", out.Err,
	)
	return out
}

// applyUnderSnapshot runs the fixer with the snapshot armed: any error or
// panic restores the original bytes before reporting.
func (g *Guard) applyUnderSnapshot(path string, snap *snapshot) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("correction panic: %v", r)
			if rerr := snap.Restore(); rerr != nil {
				msg = fmt.Sprintf("%s (restore failed: %v)", msg, rerr)
			}
			out = Outcome{Err: msg}
		}
	}()

	changed, err := g.fixer.Fix(path)
	if err != nil {
		msg := err.Error()
		if rerr := snap.Restore(); rerr != nil {
			msg = fmt.Sprintf("%s (restore failed: %v)", msg, rerr)
		}
		return Outcome{Err: msg}
	}
	if !changed {
		// nothing to keep; the snapshot is just clutter now
		snap.Discard()
		return Outcome{}
	}
	snap.Discard()
	return Outcome{Applied: true}
}
