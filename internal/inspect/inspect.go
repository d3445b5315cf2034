// Package inspect probes a PDF ahead of extraction: page count and size,
// recoverable text with positions, and coarse structure hints (tables,
// scanned). Its output feeds the detector, the processor selector and the
// pre-grid layout inference.
package inspect

import (
	"fmt"
	"log/slog"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tabuflow/convert-core/internal/layout"
)

type Config struct {
	// ScannedCharsPerPage: below this average the document is treated as a
	// scan (the text layer is missing or nearly empty).
	ScannedCharsPerPage int
	// WordGapFactor: fraction of the font size treated as a word boundary
	// when grouping characters into fragments.
	WordGapFactor float64
	// RowTolerance: Y distance within which characters belong to one line.
	RowTolerance float64
}

// Summary is everything the routing pipeline wants to know about a PDF
// before any extraction engine touches it.
type Summary struct {
	PageCount  int
	PageWidth  float64 // first page, page points
	PageHeight float64
	CharCount  int    // non-whitespace characters across all pages
	Text       string // plain text across all pages
	// Fragments holds the positioned text of the first page, the one the
	// layout heuristics operate on.
	Fragments []layout.TextFragment

	HasTables        bool
	HasComplexTables bool
	IsScanned        bool
}

type Inspector struct {
	cfg    Config
	logger *slog.Logger
}

func NewInspector(cfg Config, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ScannedCharsPerPage <= 0 {
		cfg.ScannedCharsPerPage = 100
	}
	if cfg.WordGapFactor <= 0 {
		cfg.WordGapFactor = 0.3
	}
	if cfg.RowTolerance <= 0 {
		cfg.RowTolerance = 2.0
	}
	return &Inspector{cfg: cfg, logger: logger}
}

// Inspect probes the file. An unreadable PDF is an error; a readable PDF with
// no text layer is not (it comes back flagged as scanned).
func (i *Inspector) Inspect(path string) (Summary, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("page count: %w", err)
	}
	s := Summary{PageCount: pages, PageWidth: 612, PageHeight: 792}

	if err := i.readText(path, &s); err != nil {
		// Text layer problems degrade to the scanned path rather than abort.
		i.logger.Warn("inspect.text.unreadable", "path", path, "error", err)
	}

	s.CharCount = countChars(s.Text)
	perPage := s.CharCount
	if pages > 1 {
		perPage = s.CharCount / pages
	}
	s.IsScanned = perPage < i.cfg.ScannedCharsPerPage

	s.HasTables, s.HasComplexTables = tableHints(s.Text)

	i.logger.Debug("inspect.done",
		"path", path,
		"pages", s.PageCount,
		"chars", s.CharCount,
		"scanned", s.IsScanned,
		"tables", s.HasTables,
	)
	return s, nil
}

func (i *Inspector) readText(path string, s *Summary) (err error) {
	// the reader panics on some malformed content streams; treat that the
	// same as a missing text layer
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text layer parse: %v", r)
		}
	}()

	f, reader, err := lpdf.Open(path)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		if n == 1 {
			s.PageWidth, s.PageHeight = pageDims(page)
			s.Fragments = i.groupFragments(page.Content().Text)
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	s.Text = sb.String()
	return nil
}

// pageDims reads the MediaBox, defaulting to US Letter when absent.
func pageDims(page lpdf.Page) (float64, float64) {
	width, height := 612.0, 792.0
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		x0 := mediaBox.Index(0).Float64()
		y0 := mediaBox.Index(1).Float64()
		x1 := mediaBox.Index(2).Float64()
		y1 := mediaBox.Index(3).Float64()
		width = x1 - x0
		height = y1 - y0
	}
	return width, height
}

// groupFragments merges the per-glyph runs the reader emits into word-level
// fragments: same line (Y within tolerance), horizontal gap under the
// font-scaled word boundary.
func (i *Inspector) groupFragments(texts []lpdf.Text) []layout.TextFragment {
	var frags []layout.TextFragment
	var cur *layout.TextFragment
	var prevEnd, prevY, prevSize float64

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			cur = nil
			continue
		}
		sameLine := cur != nil && abs(t.Y-prevY) <= i.cfg.RowTolerance
		gap := i.cfg.WordGapFactor * prevSize
		if gap <= 0 {
			gap = 1.0
		}
		if sameLine && t.X-prevEnd <= gap {
			cur.Text += t.S
		} else {
			frags = append(frags, layout.TextFragment{Text: t.S, X: t.X, Y: t.Y})
			cur = &frags[len(frags)-1]
		}
		prevEnd = t.X + t.W
		prevY = t.Y
		prevSize = t.FontSize
	}
	return frags
}

func countChars(text string) int {
	n := 0
	for _, r := range text {
		if r != ' ' && r != '\n' && r != '\t' && r != '\r' {
			n++
		}
	}
	return n
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
