// Package pipeline wires the routing core together: inspect the PDF, detect
// identity documents, pick a processor, classify, infer a forced layout when
// warranted, and price the conversion. One Decision value per document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tabuflow/convert-core/constants"
	"github.com/tabuflow/convert-core/internal/classify"
	"github.com/tabuflow/convert-core/internal/common"
	"github.com/tabuflow/convert-core/internal/idcard"
	"github.com/tabuflow/convert-core/internal/inspect"
	"github.com/tabuflow/convert-core/internal/layout"
	"github.com/tabuflow/convert-core/internal/pricing"
	"github.com/tabuflow/convert-core/internal/route"
	"github.com/tabuflow/convert-core/internal/rules"
)

// Decision is the routing verdict for one document: which processor handles
// it, what it looks like, whether the grid detector gets overridden, and
// what the conversion costs. Request-scoped; never cached.
type Decision struct {
	ID           uuid.UUID
	Path         string
	Pages        int
	Scanned      bool
	Processor    constants.Processor
	DocumentType constants.DocumentType
	Detection    idcard.Detection
	Category     constants.DocumentCategory
	Score        int
	// Grid is non-nil when the category calls for a forced two-column split
	// instead of the generic grid detector.
	Grid  *layout.GridBoundaries
	Quote pricing.Quote
}

// Router coordinates the per-document decision stages.
type Router struct {
	logger     *slog.Logger
	inspector  *inspect.Inspector
	detector   *idcard.Detector
	classifier *classify.Classifier
	calculator *pricing.Calculator
	rules      *rules.Set
}

func NewRouter(
	logger *slog.Logger,
	inspector *inspect.Inspector,
	detector *idcard.Detector,
	classifier *classify.Classifier,
	calculator *pricing.Calculator,
	rs *rules.Set,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	if rs == nil {
		rs = rules.Defaults()
	}
	if inspector == nil {
		inspector = inspect.NewInspector(inspect.Config{}, logger)
	}
	if detector == nil {
		detector = idcard.NewDetector(rs, idcard.Config{}, logger)
	}
	if classifier == nil {
		classifier = classify.NewClassifier(rs)
	}
	if calculator == nil {
		calculator = pricing.NewCalculator(rs)
	}
	return &Router{
		logger:     logger,
		inspector:  inspector,
		detector:   detector,
		classifier: classifier,
		calculator: calculator,
		rules:      rs,
	}
}

// Route decides processor, category, layout override and price for one PDF.
// Only a missing/invalid input path is an error; probe failures inside a
// readable file degrade to conservative defaults so the pipeline always
// terminates with a usable decision.
func (r *Router) Route(ctx context.Context, path, hint string) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	if err := validateInput(path); err != nil {
		return Decision{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Decision{}, fmt.Errorf("stat input: %w", err)
	}

	d := Decision{ID: uuid.New(), Path: path}
	sum, err := r.inspector.Inspect(path)
	if err != nil {
		// Conservative fallback: treat as a one-page scan with no text.
		r.logger.Error("route.inspect.failed", "request_id", common.RequestIDFromContext(ctx), "path", path, "error", err)
		sum = inspect.Summary{PageCount: 1, PageWidth: 612, PageHeight: 792, IsScanned: true}
	}
	d.Pages = sum.PageCount
	d.Scanned = sum.IsScanned

	d.Detection = r.detector.Detect(idcard.Input{
		PageCount: sum.PageCount,
		CharCount: sum.CharCount,
		HasTables: sum.HasTables,
		Text:      sum.Text,
		Fragments: sum.Fragments,
	})
	d.DocumentType = d.Detection.DocumentType

	cls := r.classifier.Classify(sum.Text)
	d.Category = cls.Category
	d.Score = cls.Score

	d.Processor = route.Select(filepath.Base(path), info.Size(), hint, sum.IsScanned, sum.HasComplexTables)
	if d.DocumentType == constants.DocTypeIDCard {
		// identity documents always take the specialized processor and skip
		// the generic tabular heuristics
		d.Processor = constants.ProcessorIdentity
		if d.Category == constants.Unknown {
			d.Category = constants.IDCard
		}
	}

	if r.rules.ForceTwoColumn(d.Category) {
		g := layout.InferLayout(sum.Fragments, sum.PageWidth, sum.PageHeight)
		d.Grid = &g
	}

	d.Quote = r.calculator.QuoteFor(d.Category, sum.IsScanned, sum.PageCount)

	r.logger.Info("route.decision",
		"request_id", common.RequestIDFromContext(ctx),
		"decision_id", d.ID,
		"path", path,
		"processor", d.Processor,
		"document_type", d.DocumentType,
		"category", d.Category,
		"pages", d.Pages,
		"credits", d.Quote.TotalRequired,
	)
	return d, nil
}

func validateInput(path string) error {
	v := common.NewValidator()
	v.Field("path", path, common.Required())
	if path != "" {
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return common.NewAppError("UNSUPPORTED_FORMAT",
				fmt.Sprintf("extension %q is not convertible", ext), common.ErrInvalidInput)
		}
	}
	return v.Error()
}
