package table

import (
	"errors"
	"io"
	"strings"
	"testing"
)

const standardTable = "../../data/elements.csv"

const sampleCSV = `atomic_number,element,symbol,atomic_mass
1,Hydrogen,H,1.007
2,Helium,He,4.002
3,Lithium,Li,6.941
`

func TestLoad_CSVLowercasesAndAligns(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV), "sample.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", tbl.Len())
	}

	name, mass := tbl.RecordAt(1)
	if name != "helium" {
		t.Errorf("expected name %q, got %q", "helium", name)
	}
	if mass != 4.002 {
		t.Errorf("expected mass %v, got %v", 4.002, mass)
	}
	if sym := tbl.SymbolAt(2); sym != "li" {
		t.Errorf("expected symbol %q, got %q", "li", sym)
	}
}

func TestFindIndex(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV), "sample.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		symbol string
		want   int
		found  bool
	}{
		{"h", 0, true},
		{"he", 1, true},
		{"li", 2, true},
		{"He", 0, false}, // lookups expect lowercased input
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := tbl.FindIndex(tt.symbol)
		if ok != tt.found || got != tt.want {
			t.Errorf("FindIndex(%q): expected (%d, %v), got (%d, %v)", tt.symbol, tt.want, tt.found, got, ok)
		}
	}
}

func TestFindIndex_DuplicateReturnsLowest(t *testing.T) {
	tbl, err := New(
		[]string{"First", "Second"},
		[]string{"Xx", "xx"},
		[]float64{1, 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := tbl.FindIndex("xx")
	if !ok || i != 0 {
		t.Errorf("expected (0, true), got (%d, %v)", i, ok)
	}
}

func TestNew_MisalignedColumns(t *testing.T) {
	_, err := New([]string{"a"}, []string{"a", "b"}, []float64{1})
	if err == nil {
		t.Fatal("expected error for misaligned columns")
	}
}

func TestElement_AtomicNumberFromIndex(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV), "sample.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := tbl.Element(2)
	want := Element{Name: "lithium", Symbol: "li", AtomicNumber: 3, Mass: 6.941}
	if el != want {
		t.Errorf("expected %+v, got %+v", want, el)
	}
	if n := len(tbl.Elements()); n != 3 {
		t.Errorf("expected 3 elements, got %d", n)
	}
}

func TestRecordAt_OutOfRangePanics(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV), "sample.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	tbl.RecordAt(tbl.Len())
}

func TestLoad_BadMassIsFatal(t *testing.T) {
	src := "n,element,symbol,mass\n1,Hydrogen,H,1.007\n2,Helium,He,unknown\n"
	_, err := Load(strings.NewReader(src), "bad.csv")
	if err == nil {
		t.Fatal("expected error for non-numeric mass")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Line != 3 {
		t.Errorf("expected line 3, got %d", loadErr.Line)
	}
}

func TestLoad_WholeNumberMass(t *testing.T) {
	src := "n,element,symbol,mass\n43,Technetium,Tc,98\n"
	tbl, err := Load(strings.NewReader(src), "tc.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, mass := tbl.RecordAt(0); mass != 98 {
		t.Errorf("expected mass 98, got %v", mass)
	}
}

func TestLoad_WrongFieldCount(t *testing.T) {
	src := "n,element,symbol,mass\n1,Hydrogen,H\n"
	_, err := Load(strings.NewReader(src), "short.csv")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Line != 2 {
		t.Errorf("expected line 2, got %d", loadErr.Line)
	}
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(strings.NewReader(""), "empty.csv")
	if err == nil {
		t.Fatal("expected error for empty source")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestLoad_UnreadableSource(t *testing.T) {
	_, err := Load(failingReader{}, "broken.csv")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected wrapped io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(strings.NewReader(sampleCSV), "table.pdf")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does-not-exist.csv")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}

func TestLoadFile_StandardTable(t *testing.T) {
	tbl, err := LoadFile(standardTable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 118 {
		t.Fatalf("expected 118 elements, got %d", tbl.Len())
	}

	checks := []struct {
		symbol string
		index  int
		name   string
	}{
		{"h", 0, "hydrogen"},
		{"ge", 31, "germanium"},
		{"tc", 42, "technetium"},
		{"og", 117, "oganesson"},
	}
	for _, c := range checks {
		i, ok := tbl.FindIndex(c.symbol)
		if !ok || i != c.index {
			t.Errorf("FindIndex(%q): expected %d, got (%d, %v)", c.symbol, c.index, i, ok)
			continue
		}
		if name, _ := tbl.RecordAt(i); name != c.name {
			t.Errorf("RecordAt(%d): expected %q, got %q", i, c.name, name)
		}
	}
}
