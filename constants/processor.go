package constants

// Processor names an external extraction engine/configuration that a document
// can be routed to. The dispatch layer maps these to actual cloud calls.
type Processor string

// Stable values (the dispatch layer matches on these exact strings).
const (
	ProcessorForm     Processor = "FORM_PARSER_PROCESSOR"      // general forms, invoices, bills
	ProcessorBank     Processor = "BANK_STATEMENT_PROCESSOR"   // bank/account statements
	ProcessorIdentity Processor = "IDENTITY_DOCUMENT_PROCESSOR" // ID cards, licenses, passports
	ProcessorPayslip  Processor = "PAYSLIP_PROCESSOR"          // payslips, salary statements
	ProcessorLayout   Processor = "LAYOUT_PARSER_PROCESSOR"    // scanned documents needing layout parsing
	ProcessorTable    Processor = "TABLE_EXTRACTION_PROCESSOR" // dense/complex tabular documents
)
