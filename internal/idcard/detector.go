// Package idcard flags identity-document PDFs so they route to specialized
// processing and skip the generic tabular heuristics. Three independent
// signals are combined; no single one is sufficient on its own.
package idcard

import (
	"log/slog"
	"math"
	"strings"

	"github.com/tabuflow/convert-core/constants"
	"github.com/tabuflow/convert-core/internal/layout"
	"github.com/tabuflow/convert-core/internal/rules"
)

// Config tunes the detector thresholds. Zero values pick the defaults below.
type Config struct {
	MaxPages          int // page/image signal requires at most this many pages
	MaxCharsPerPage   int // below this density a page counts as image-heavy
	MinKeywordHits    int // keyword signal floor
	MaxAlignedRepeats int // more repeats of one rounded coordinate means grid-aligned text
}

const (
	DefaultMaxPages          = 2
	DefaultMaxCharsPerPage   = 300
	DefaultMinKeywordHits    = 2
	DefaultMaxAlignedRepeats = 3
)

// Input carries the evidence extracted upstream for one document.
type Input struct {
	PageCount int
	CharCount int
	HasTables bool
	Text      string
	Fragments []layout.TextFragment
}

// Signals records which of the three independent checks fired.
type Signals struct {
	PageImage bool // few pages, image-heavy, no tables
	Keyword   bool // enough ID-related keywords in the text
	Layout    bool // free-floating (not grid-aligned) sparse text
}

// Detection is the routing verdict for one document.
type Detection struct {
	DocumentType constants.DocumentType
	Confidence   int // 0-100
	Signals      Signals
}

type Detector struct {
	cfg      Config
	keywords []string
	logger   *slog.Logger
}

func NewDetector(rs *rules.Set, cfg Config, logger *slog.Logger) *Detector {
	if rs == nil {
		rs = rules.Defaults()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	if cfg.MaxCharsPerPage <= 0 {
		cfg.MaxCharsPerPage = DefaultMaxCharsPerPage
	}
	if cfg.MinKeywordHits <= 0 {
		cfg.MinKeywordHits = DefaultMinKeywordHits
	}
	if cfg.MaxAlignedRepeats <= 0 {
		cfg.MaxAlignedRepeats = DefaultMaxAlignedRepeats
	}
	return &Detector{cfg: cfg, keywords: rs.IDKeywords, logger: logger}
}

// Detect decides ID_CARD iff (page AND keyword) OR (page AND layout): the
// page/image signal is a necessary precondition in both branches, so a long
// or table-bearing document can never be flagged by keywords alone.
//
// Any internal failure degrades to NORMAL_PDF with confidence 0; the cheaper,
// generic route is always the fail-safe.
func (d *Detector) Detect(in Input) (det Detection) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("idcard.detect.recovered", "panic", r)
			det = Detection{DocumentType: constants.DocTypeNormalPDF}
		}
	}()

	lowDensity := d.lowDensity(in)
	sig := Signals{
		PageImage: in.PageCount <= d.cfg.MaxPages && lowDensity && !in.HasTables,
		Keyword:   d.keywordHits(in.Text) >= d.cfg.MinKeywordHits,
		Layout:    !d.gridAligned(in.Fragments) && lowDensity,
	}

	isID := (sig.PageImage && sig.Keyword) || (sig.PageImage && sig.Layout)

	confidence := 0
	if sig.PageImage {
		confidence += 40
	}
	if sig.Keyword {
		confidence += 30
	}
	if sig.Layout {
		confidence += 30
	}
	if isID {
		confidence += 10
	}
	if confidence > 100 {
		confidence = 100
	}

	docType := constants.DocTypeNormalPDF
	if isID {
		docType = constants.DocTypeIDCard
	}
	return Detection{DocumentType: docType, Confidence: confidence, Signals: sig}
}

func (d *Detector) lowDensity(in Input) bool {
	pages := in.PageCount
	if pages < 1 {
		pages = 1
	}
	return in.CharCount < d.cfg.MaxCharsPerPage*pages
}

func (d *Detector) keywordHits(text string) int {
	lowered := strings.ToLower(text)
	hits := 0
	for _, kw := range d.keywords {
		if strings.Contains(lowered, kw) {
			hits++
		}
	}
	return hits
}

// gridAligned reports whether fragments line up in a table-like grid: some
// rounded X or Y coordinate repeating more often than MaxAlignedRepeats.
// ID cards print fields free-form, so their fragments rarely align.
func (d *Detector) gridAligned(fragments []layout.TextFragment) bool {
	xCounts := make(map[int]int)
	yCounts := make(map[int]int)
	for _, f := range fragments {
		x := int(math.Round(f.X))
		y := int(math.Round(f.Y))
		xCounts[x]++
		yCounts[y]++
		if xCounts[x] > d.cfg.MaxAlignedRepeats || yCounts[y] > d.cfg.MaxAlignedRepeats {
			return true
		}
	}
	return false
}
