// Package route maps a document to the extraction processor that should
// handle it. Resolution is ordered and short-circuiting: an explicit caller
// hint always beats filename inference, which always beats content inference,
// so callers with domain knowledge can force routing.
package route

import (
	"strings"

	"github.com/tabuflow/convert-core/constants"
)

// domainKeywords pairs a processor with the substrings that select it. Order
// matters: the first matching entry wins.
var domainKeywords = []struct {
	processor constants.Processor
	words     []string
}{
	{constants.ProcessorBank, []string{"bank", "statement"}},
	{constants.ProcessorForm, []string{"invoice", "bill"}},
	{constants.ProcessorIdentity, []string{"id", "identity", "card"}},
	{constants.ProcessorPayslip, []string{"pay", "salary", "payslip"}},
}

// Select resolves the processor for one document.
//
//  1. hint keywords (caller-supplied category hint)
//  2. filename keywords
//  3. content fallback: scanned -> layout parser, complex tables -> table
//     processor, else the general form parser.
func Select(filename string, fileSize int64, hint string, isScanned, hasComplexTables bool) constants.Processor {
	if p, ok := matchKeywords(hint); ok {
		return p
	}
	if p, ok := matchKeywords(filename); ok {
		return p
	}
	if isScanned {
		return constants.ProcessorLayout
	}
	if hasComplexTables {
		return constants.ProcessorTable
	}
	return constants.ProcessorForm
}

func matchKeywords(s string) (constants.Processor, bool) {
	lowered := strings.ToLower(strings.TrimSpace(s))
	if lowered == "" {
		return "", false
	}
	for _, entry := range domainKeywords {
		for _, w := range entry.words {
			if strings.Contains(lowered, w) {
				return entry.processor, true
			}
		}
	}
	return "", false
}
