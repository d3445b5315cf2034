package constants

import (
	"strings"
)

// DocumentCategory labels what kind of document a PDF is, as decided by the
// keyword classifier. Pre-extraction and post-extraction passes may disagree;
// callers must tolerate that.
type DocumentCategory string

const (
	Invoice       DocumentCategory = "invoice"
	BankStatement DocumentCategory = "bank_statement"
	BillOrReceipt DocumentCategory = "bill_or_receipt"
	Resume        DocumentCategory = "resume"
	Certificate   DocumentCategory = "certificate"
	IDCard        DocumentCategory = "id_card"
	Letter        DocumentCategory = "letter"
	GenericForm   DocumentCategory = "generic_form"
	Unknown       DocumentCategory = "unknown"
)

// CategoryOrder fixes the enumeration order used for classification
// tie-breaks: the first category reaching the top keyword count wins.
// Unknown is not a scorable category and is deliberately absent.
var CategoryOrder = []DocumentCategory{
	Invoice,
	BankStatement,
	BillOrReceipt,
	Resume,
	Certificate,
	IDCard,
	Letter,
	GenericForm,
}

func AsStringSlice() []string {
	result := make([]string, len(CategoryOrder))
	for i, cat := range CategoryOrder {
		result[i] = string(cat)
	}
	return result
}

// ParseCategory canonicalizes a free-form label (e.g. an API hint) into a
// DocumentCategory. Returns Unknown, false when the label matches nothing.
func ParseCategory(input string) (DocumentCategory, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	// synonyms map
	synonyms := map[string]DocumentCategory{
		"receipt":          BillOrReceipt,
		"bill":             BillOrReceipt,
		"statement":        BankStatement,
		"cv":               Resume,
		"curriculum_vitae": Resume,
		"identity_card":    IDCard,
		"driving_license":  IDCard,
		"form":             GenericForm,
		"application":      GenericForm,
		"diploma":          Certificate,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range CategoryOrder {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return Unknown, false
}
