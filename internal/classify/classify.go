// Package classify scores free-form document text against per-category
// keyword tables. It runs twice per document: on raw pre-layout text
// fragments, and on the text recovered from a finished spreadsheet.
package classify

import (
	"strings"

	"github.com/tabuflow/convert-core/constants"
	"github.com/tabuflow/convert-core/internal/rules"
)

// MinEvidence is the minimum keyword-hit count before a category is trusted.
// A single incidental keyword ("date", "form") must not route a generic
// document into a specialized, more expensive pipeline.
const MinEvidence = 2

// Result is one classification pass over one document.
type Result struct {
	Category constants.DocumentCategory
	Score    int
	// Signals records which keywords of the winning candidate matched.
	Signals map[string]bool
}

// Classifier is a pure function over an immutable keyword table; safe for
// concurrent use.
type Classifier struct {
	rules *rules.Set
}

func NewClassifier(rs *rules.Set) *Classifier {
	if rs == nil {
		rs = rules.Defaults()
	}
	return &Classifier{rules: rs}
}

// Classify labels text with the category whose keyword list matches most.
// Ties break by constants.CategoryOrder (first declared wins). A top count
// below MinEvidence yields Unknown; empty input yields Unknown with score 0.
// Never fails: absence of text is a valid Unknown, not an error.
func (c *Classifier) Classify(text string) Result {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Result{Category: constants.Unknown}
	}

	var (
		bestCat   constants.DocumentCategory
		bestScore int
		bestHits  map[string]bool
	)
	for _, cat := range constants.CategoryOrder {
		score, hits := countHits(lowered, c.rules.KeywordsFor(cat))
		if score > bestScore {
			bestCat, bestScore, bestHits = cat, score, hits
		}
	}

	return newResult(bestCat, bestScore, bestHits)
}

// newResult enforces the minimum-evidence floor at construction: no caller
// can obtain a named category backed by fewer than MinEvidence hits.
func newResult(cat constants.DocumentCategory, score int, hits map[string]bool) Result {
	if score < MinEvidence {
		cat = constants.Unknown
	}
	return Result{Category: cat, Score: score, Signals: hits}
}

func countHits(lowered string, keywords []string) (int, map[string]bool) {
	var hits map[string]bool
	score := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			if hits == nil {
				hits = make(map[string]bool)
			}
			hits[kw] = true
			score++
		}
	}
	return score, hits
}
