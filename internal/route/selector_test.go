package route

import (
	"testing"

	"github.com/tabuflow/convert-core/constants"
)

func TestSelectHintBeatsEverything(t *testing.T) {
	got := Select("scan0001.pdf", 1 << 20, "bank statement", true, true)
	if got != constants.ProcessorBank {
		t.Errorf("processor = %s, want bank (hint wins)", got)
	}
}

func TestSelectFilenameBeatsContent(t *testing.T) {
	got := Select("march-invoice.pdf", 1 << 20, "", true, false)
	if got != constants.ProcessorForm {
		t.Errorf("processor = %s, want form (filename wins over scanned flag)", got)
	}
}

func TestSelectKeywordRouting(t *testing.T) {
	tests := []struct {
		hint string
		want constants.Processor
	}{
		{"bank", constants.ProcessorBank},
		{"account statement", constants.ProcessorBank},
		{"invoice", constants.ProcessorForm},
		{"electricity bill", constants.ProcessorForm},
		{"identity proof", constants.ProcessorIdentity},
		{"aadhaar card", constants.ProcessorIdentity},
		{"payslip", constants.ProcessorPayslip},
		{"salary slip", constants.ProcessorPayslip},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			if got := Select("doc.pdf", 0, tt.hint, false, false); got != tt.want {
				t.Errorf("Select(hint=%q) = %s, want %s", tt.hint, got, tt.want)
			}
		})
	}
}

func TestSelectContentFallback(t *testing.T) {
	if got := Select("doc.pdf", 0, "", true, false); got != constants.ProcessorLayout {
		t.Errorf("scanned fallback = %s, want layout parser", got)
	}
	if got := Select("doc.pdf", 0, "", false, true); got != constants.ProcessorTable {
		t.Errorf("complex-table fallback = %s, want table processor", got)
	}
	if got := Select("doc.pdf", 0, "", false, false); got != constants.ProcessorForm {
		t.Errorf("default fallback = %s, want form parser", got)
	}
}

func TestSelectScannedBeatsComplexTables(t *testing.T) {
	if got := Select("doc.pdf", 0, "", true, true); got != constants.ProcessorLayout {
		t.Errorf("processor = %s, want layout parser when both flags set", got)
	}
}
