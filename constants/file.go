package constants

import "strings"

// FileTypes holds the source formats the conversion pipeline accepts.
var FileTypes = []string{"PDF", "XLSX"}

const (
	PDF  = "PDF"
	XLSX = "XLSX"
)

// AllowedExtensions holds the default allowed file extensions for conversion input.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"xlsx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a pipeline format, or "" when
// the extension is unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "xlsx":
		return XLSX
	default:
		return ""
	}
}
