package inspect

import "strings"

// tableHints scans extracted text for grid-like patterns: tab or pipe
// delimited rows and horizontal rule lines. The second result flags heavy
// tabular content that warrants the table-specialized processor.
func tableHints(text string) (hasTables, dense bool) {
	lines := strings.Split(text, "\n")

	tabCount := 0
	pipeCount := 0
	ruleLineCount := 0
	for _, line := range lines {
		tabCount += strings.Count(line, "\t")
		pipeCount += strings.Count(line, "|")
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 3 && (strings.Count(trimmed, "-") > len(trimmed)/2 || strings.Count(trimmed, "_") > len(trimmed)/2) {
			ruleLineCount++
		}
	}

	hasTables = tabCount > 5 || pipeCount > 5 || ruleLineCount > 2
	dense = tabCount > 20 || pipeCount > 20 || ruleLineCount > 8
	return hasTables, dense
}
