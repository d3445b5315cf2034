// Package rules holds the static classification, eligibility and pricing
// tables the conversion core runs on. Defaults are compiled in; deployments
// can overlay them from a YAML file validated against a JSON-Schema.
package rules

import (
	"github.com/tabuflow/convert-core/constants"
)

// Pricing is the per-page credit table. Keys are pricing-tier names, not
// document categories; a category resolves to a tier by exact key match
// before any flag-based fallback.
type Pricing struct {
	PerPage          map[string]float64
	DefaultPerPage   float64
	PremiumThreshold float64
}

// Set is one immutable bundle of rule tables. Construct via Defaults or Load;
// components hold their own reference and never mutate it after startup.
type Set struct {
	// Keywords maps each scorable category to its keyword list. Scoring
	// iterates constants.CategoryOrder, so map iteration order never leaks
	// into classification results.
	Keywords map[constants.DocumentCategory][]string

	// IDKeywords is the identity-document keyword set used by the detector,
	// separate from the id_card classifier list (the detector casts a wider
	// net over label text like "dob" or "issuing authority").
	IDKeywords []string

	Pricing Pricing

	// TwoColumn marks categories whose pages are label/value pairs and should
	// pre-empt the generic grid detector with a forced two-column split.
	TwoColumn map[constants.DocumentCategory]bool

	// SheetFix marks categories eligible for post-hoc spreadsheet correction.
	// Deliberately distinct from TwoColumn: pre-grid inference and post-hoc
	// correction are independent decisions.
	SheetFix map[constants.DocumentCategory]bool
}

// Defaults returns the compiled-in rule set.
func Defaults() *Set {
	return &Set{
		Keywords: map[constants.DocumentCategory][]string{
			constants.Invoice: {
				"invoice", "invoice no", "invoice number", "invoice date",
				"billing address", "shipping address",
			},
			constants.BankStatement: {
				"bank statement", "account statement", "account summary",
				"statement period", "opening balance", "closing balance", "bank name",
			},
			constants.BillOrReceipt: {
				"receipt", "bill", "payment receipt", "transaction receipt",
				"bill number", "paid amount", "payment method", "transaction id",
			},
			constants.Resume: {
				"resume", "cv", "curriculum vitae", "education", "experience",
				"skills", "objective", "work history",
			},
			constants.Certificate: {
				"certificate", "certified", "award", "achievement", "diploma",
				"degree", "issued",
			},
			constants.IDCard: {
				"id card", "identity card", "identification", "photo id",
				"government id", "driving license",
			},
			constants.Letter: {
				"dear", "sincerely", "yours", "regards",
				"to whom it may concern", "subject",
			},
			constants.GenericForm: {
				"form", "application", "please fill", "signature", "registration number",
			},
		},
		IDKeywords: []string{
			"name", "dob", "date of birth", "aadhaar", "pan", "passport",
			"license", "photo", "signature", "issuing authority", "nationality",
			"id no", "valid until",
		},
		Pricing: Pricing{
			PerPage: map[string]float64{
				"clean_table":    2.0,
				"bank_statement": 2.5,
				"invoice":        3.0,
				"report":         3.0,
				"id_card":        6.0,
				"heavy_scanned":  6.0,
			},
			DefaultPerPage:   2.0,
			PremiumThreshold: 30.0,
		},
		TwoColumn: map[constants.DocumentCategory]bool{
			constants.BillOrReceipt: true,
			constants.GenericForm:   true,
			constants.Certificate:   true,
			constants.IDCard:        true,
		},
		SheetFix: map[constants.DocumentCategory]bool{
			constants.BillOrReceipt: true,
			constants.GenericForm:   true,
			constants.Certificate:   true,
		},
	}
}

// KeywordsFor returns the keyword list for a category (nil for Unknown).
func (s *Set) KeywordsFor(cat constants.DocumentCategory) []string {
	return s.Keywords[cat]
}

// ForceTwoColumn reports whether pre-grid inference should override the
// generic grid detector with a two-column split for this category.
func (s *Set) ForceTwoColumn(cat constants.DocumentCategory) bool {
	return s.TwoColumn[cat]
}

// SheetFixEligible reports whether a finished spreadsheet classified as this
// category may be rewritten by the heuristic correction pass.
func (s *Set) SheetFixEligible(cat constants.DocumentCategory) bool {
	return s.SheetFix[cat]
}
