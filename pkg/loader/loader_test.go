package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func spectrumMGF(scans string) string {
	return `BEGIN IONS
PEPMASS=250.1
SCANS=` + scans + `
100.0 10
200.0 100
END IONS
`
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.mgf", spectrumMGF("7"))
	writeFile(t, dir, "UPPER.MGF", spectrumMGF("8"))
	writeFile(t, dir, "notes.txt", "not a peak list")

	lib, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Directory entries arrive sorted, extension matching is
	// case-insensitive, non-MGF files are skipped.
	names := lib.BatchNames()
	if len(names) != 2 || names[0] != "UPPER" || names[1] != "sample" {
		t.Fatalf("batch names = %v, want [UPPER sample]", names)
	}
	if lib.NumSpectra() != 2 {
		t.Errorf("total spectra = %d, want 2", lib.NumSpectra())
	}

	spectra := lib.Batch("sample")
	if len(spectra) != 1 {
		t.Fatalf("batch sample has %d spectra, want 1", len(spectra))
	}
	if spectra[0].SourceFile != "sample.mgf" {
		t.Errorf("source file = %q", spectra[0].SourceFile)
	}
}

func TestLoadStemCollisionLastWins(t *testing.T) {
	dir := t.TempDir()
	// Sorted read order: dup.MGF before dup.mgf, so dup.mgf wins.
	writeFile(t, dir, "dup.MGF", spectrumMGF("1"))
	writeFile(t, dir, "dup.mgf", spectrumMGF("2"))

	lib, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if lib.NumBatches() != 1 {
		t.Fatalf("expected a single batch, got %v", lib.BatchNames())
	}

	spectra := lib.Batch("dup")
	if len(spectra) != 1 {
		t.Fatalf("batch dup has %d spectra, want 1", len(spectra))
	}
	if v, _ := spectra[0].Params.Get("SCANS"); v.String() != "2" {
		t.Errorf("SCANS = %q, want the later file's spectrum", v.String())
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing directory should not error, got %v", err)
	}
	if lib.NumBatches() != 0 {
		t.Errorf("expected empty library, got %v", lib.BatchNames())
	}
}

func TestLoadKeepsSpectraBeforeParseError(t *testing.T) {
	dir := t.TempDir()
	content := spectrumMGF("1") + `BEGIN IONS
SCANS=2
broken peak line
END IONS
`
	writeFile(t, dir, "partial.mgf", content)

	lib, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	spectra := lib.Batch("partial")
	if len(spectra) != 1 {
		t.Fatalf("expected the spectrum before the error to survive, got %d", len(spectra))
	}
	if v, _ := spectra[0].Params.Get("SCANS"); v.String() != "1" {
		t.Errorf("SCANS = %q, want \"1\"", v.String())
	}
}

func TestLoadPathSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "single.mgf", spectrumMGF("5"))

	lib, err := LoadPath(filepath.Join(dir, "single.mgf"))
	if err != nil {
		t.Fatal(err)
	}
	if lib.NumBatches() != 1 || lib.BatchNames()[0] != "single" {
		t.Fatalf("batch names = %v, want [single]", lib.BatchNames())
	}
}

func TestLoadPathInputNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "plain text")

	if _, err := LoadPath(filepath.Join(dir, "missing")); !errors.Is(err, ErrInputNotFound) {
		t.Errorf("missing path: err = %v, want ErrInputNotFound", err)
	}
	if _, err := LoadPath(filepath.Join(dir, "notes.txt")); !errors.Is(err, ErrInputNotFound) {
		t.Errorf("non-mgf file: err = %v, want ErrInputNotFound", err)
	}
}

func TestLibraryAddReplacesInPlace(t *testing.T) {
	lib := NewLibrary()
	lib.Add("a", nil)
	lib.Add("b", nil)
	lib.Add("a", nil) // replacement keeps original position

	names := lib.BatchNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("batch names = %v, want [a b]", names)
	}
}
