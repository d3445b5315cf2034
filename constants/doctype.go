package constants

// DocumentType is the coarse routing decision of the identity-document
// detector, distinct from DocumentCategory: it only separates identity
// documents (specialized, more expensive processing) from everything else.
type DocumentType string

// Stable values (surfaced verbatim to the dispatch layer and telemetry).
const (
	DocTypeIDCard    DocumentType = "ID_CARD"
	DocTypeNormalPDF DocumentType = "NORMAL_PDF"
)
