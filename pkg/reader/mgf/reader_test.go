package mgf

import (
	"strings"
	"testing"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/core"
)

const sampleMGF = `# exported by some producer
BEGIN IONS
TITLE=first spectrum, id=abc
PEPMASS=500.25 1000
SCANS=7
RTINSECONDS=12.5
CHARGE=2+
100.1 10
200.2 100 1
300.3 50
END IONS

; second record has no peaks
BEGIN IONS
PEPMASS=not a number
SCANS=8
END IONS
`

func readAll(t *testing.T, input string) ([]*core.Spectrum, error) {
	t.Helper()

	var spectra []*core.Spectrum
	r := NewReader(strings.NewReader(input))
	for r.Next() {
		spectra = append(spectra, r.Spectrum())
	}
	return spectra, r.Err()
}

func TestReadSpectra(t *testing.T) {
	spectra, err := readAll(t, sampleMGF)
	if err != nil {
		t.Fatal(err)
	}
	if len(spectra) != 2 {
		t.Fatalf("expected 2 spectra, got %d", len(spectra))
	}

	first := spectra[0]
	if got := first.PeakCount(); got != 3 {
		t.Fatalf("first spectrum peak count = %d, want 3", got)
	}
	if first.MZ[1] != 200.2 || first.Intensity[1] != 100 {
		t.Errorf("peak 1 = (%v, %v), want (200.2, 100)", first.MZ[1], first.Intensity[1])
	}

	// TITLE values may contain '='; only the first '=' splits.
	if v, ok := first.Params.Get("TITLE"); !ok || v.String() != "first spectrum, id=abc" {
		t.Errorf("TITLE = %q", v.String())
	}

	v, ok := first.Params.Get("PEPMASS")
	if !ok || v.Kind() != core.KindNumberList {
		t.Fatalf("PEPMASS kind = %v, want number list", v.Kind())
	}
	if f, _ := v.Float(); f != 500.25 {
		t.Errorf("PEPMASS = %v, want 500.25", f)
	}

	if v, _ := first.Params.Get("RTINSECONDS"); v.Kind() != core.KindNumber {
		t.Errorf("RTINSECONDS kind = %v, want number", v.Kind())
	}
	if v, _ := first.Params.Get("CHARGE"); v.Kind() != core.KindText || v.String() != "2+" {
		t.Errorf("CHARGE = %v %q, want text \"2+\"", v.Kind(), v.String())
	}

	second := spectra[1]
	if second.MZ == nil || second.Intensity == nil {
		t.Error("peakless spectrum should carry empty arrays, not nil")
	}
	if second.PeakCount() != 0 {
		t.Errorf("second spectrum peak count = %d, want 0", second.PeakCount())
	}
	// Unparseable PEPMASS stays text as found.
	if v, _ := second.Params.Get("PEPMASS"); v.Kind() != core.KindText || v.String() != "not a number" {
		t.Errorf("PEPMASS = %v %q", v.Kind(), v.String())
	}
}

func TestReadTruncatedRecord(t *testing.T) {
	input := `BEGIN IONS
SCANS=9
100.0 5
`
	spectra, err := readAll(t, input)
	if err != nil {
		t.Fatal(err)
	}
	if len(spectra) != 1 {
		t.Fatalf("expected truncated record to be returned, got %d spectra", len(spectra))
	}
	if spectra[0].PeakCount() != 1 {
		t.Errorf("peak count = %d, want 1", spectra[0].PeakCount())
	}
}

func TestReadMalformedPeakLine(t *testing.T) {
	input := `BEGIN IONS
SCANS=1
100.0 ten
END IONS
`
	spectra, err := readAll(t, input)
	if err == nil {
		t.Fatal("expected error for malformed peak line")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should carry the line number: %v", err)
	}
	if len(spectra) != 0 {
		t.Errorf("expected no spectra before the error, got %d", len(spectra))
	}
}

func TestRepeatedKeyKeepsFirst(t *testing.T) {
	input := `BEGIN IONS
SCANS=1
SCANS=2
END IONS
`
	spectra, err := readAll(t, input)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := spectra[0].Params.Get("SCANS"); v.String() != "1" {
		t.Errorf("SCANS = %q, want first occurrence \"1\"", v.String())
	}
}

func TestEmptyInput(t *testing.T) {
	spectra, err := readAll(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(spectra) != 0 {
		t.Errorf("expected no spectra, got %d", len(spectra))
	}

	// Comment-only files behave the same as empty ones.
	spectra, err = readAll(t, "# nothing here\n; still nothing\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(spectra) != 0 {
		t.Errorf("expected no spectra from comments, got %d", len(spectra))
	}
}
