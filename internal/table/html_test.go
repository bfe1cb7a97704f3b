package table

import (
	"strings"
	"testing"
)

func TestLoad_HTMLTable(t *testing.T) {
	input := `<html><head><title>Elements</title></head><body>
<p>Reference data.</p>
<table>
  <tr><th>No.</th><th>Element</th><th>Symbol</th><th>Mass</th></tr>
  <tr><td>1</td><td>Hydrogen</td><td><b>H</b></td><td>1.007</td></tr>
  <tr><td>2</td><td>Helium</td><td>He</td><td> 4.002 </td></tr>
</table>
</body></html>`

	tbl, err := Load(strings.NewReader(input), "elements.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", tbl.Len())
	}
	i, ok := tbl.FindIndex("he")
	if !ok || i != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", i, ok)
	}
	if name, mass := tbl.RecordAt(0); name != "hydrogen" || mass != 1.007 {
		t.Errorf("expected (hydrogen, 1.007), got (%s, %v)", name, mass)
	}
}

func TestLoad_HTMLWithoutTable(t *testing.T) {
	_, err := Load(strings.NewReader("<p>nothing here</p>"), "page.htm")
	if err == nil {
		t.Fatal("expected error when no table is present")
	}
}

func TestLoad_HTMLBadMass(t *testing.T) {
	input := `<table>
<tr><th>n</th><th>name</th><th>symbol</th><th>mass</th></tr>
<tr><td>1</td><td>Hydrogen</td><td>H</td><td>[1]</td></tr>
</table>`
	_, err := Load(strings.NewReader(input), "bad.html")
	if err == nil {
		t.Fatal("expected error for non-numeric mass")
	}
}
