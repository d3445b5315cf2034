package sheetfix

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sheetFrom(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for ri, row := range rows {
		for ci, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatal(err)
			}
		}
	}
	return f
}

func rowsOf(t *testing.T, f *excelize.File) [][]string {
	t.Helper()
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestApplyCorrectionsTrimsPadding(t *testing.T) {
	f := sheetFrom(t, [][]string{
		{"Bill Number", "  123  "},
		{"Paid Amount", " 500"},
	})
	defer f.Close()

	changed, err := applyCorrections(f, "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	want := [][]string{
		{"Bill Number", "123"},
		{"Paid Amount", "500"},
	}
	if got := rowsOf(t, f); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestApplyCorrectionsDropsInteriorEmptyColumn(t *testing.T) {
	f := sheetFrom(t, [][]string{
		{"Bill Number", "", "123"},
		{"Paid Amount", "", "500"},
	})
	defer f.Close()

	changed, err := applyCorrections(f, "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	want := [][]string{
		{"Bill Number", "123"},
		{"Paid Amount", "500"},
	}
	if got := rowsOf(t, f); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestApplyCorrectionsKeepsEdgeColumns(t *testing.T) {
	// leading/trailing empty columns are outside the used range and stay
	f := sheetFrom(t, [][]string{
		{"", "Label", "Value"},
	})
	defer f.Close()

	changed, err := applyCorrections(f, "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Errorf("unexpected change: %v", rowsOf(t, f))
	}
}

func TestApplyCorrectionsMergesContinuationRow(t *testing.T) {
	f := sheetFrom(t, [][]string{
		{"Shipping Address", "12 Long Street"},
		{"", "Apt 4, Springfield"},
		{"Paid Amount", "500"},
	})
	defer f.Close()

	changed, err := applyCorrections(f, "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	want := [][]string{
		{"Shipping Address", "12 Long Street Apt 4, Springfield"},
		{"Paid Amount", "500"},
	}
	if got := rowsOf(t, f); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestApplyCorrectionsCleanSheetUnchanged(t *testing.T) {
	f := sheetFrom(t, [][]string{
		{"Bill Number", "123"},
		{"Paid Amount", "500"},
	})
	defer f.Close()

	changed, err := applyCorrections(f, "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("clean sheet reported as changed")
	}
}

func TestSolePopulatedCell(t *testing.T) {
	tests := []struct {
		row     []string
		wantIdx int
		wantOK  bool
	}{
		{[]string{"", "x", ""}, 1, true},
		{[]string{"x"}, 0, true},
		{[]string{"", "  ", ""}, -1, false},
		{[]string{"a", "b"}, -1, false},
		{nil, -1, false},
	}
	for _, tt := range tests {
		idx, ok := solePopulatedCell(tt.row)
		if idx != tt.wantIdx || ok != tt.wantOK {
			t.Errorf("solePopulatedCell(%v) = (%d, %v), want (%d, %v)", tt.row, idx, ok, tt.wantIdx, tt.wantOK)
		}
	}
}
