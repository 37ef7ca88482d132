// Package loader scans directories of MGF files and groups their
// spectra into batches keyed by file stem.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/core"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/reader/mgf"
)

// Extension is the peak-list file extension, matched case-insensitively.
const Extension = ".mgf"

// ErrInputNotFound indicates the supplied path is neither a directory
// nor an MGF file. This is a caller configuration mistake and is kept
// distinct from read failures.
var ErrInputNotFound = errors.New("input is neither a directory nor an .mgf file")

// Library is an ordered mapping from batch name to the spectra loaded
// from that batch's source file. Batch order is the order batches were
// first encountered, so table output is reproducible end to end.
type Library struct {
	order   []string
	batches map[string][]*core.Spectrum
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{batches: make(map[string][]*core.Spectrum)}
}

// Add records a batch. When the name is already present the new spectra
// fully replace the old list (last write wins) and the batch keeps its
// original position in the order.
func (l *Library) Add(name string, spectra []*core.Spectrum) {
	if _, ok := l.batches[name]; !ok {
		l.order = append(l.order, name)
	}
	l.batches[name] = spectra
}

// BatchNames returns the batch names in encounter order.
func (l *Library) BatchNames() []string {
	return l.order
}

// Batch returns the spectra of a named batch.
func (l *Library) Batch(name string) []*core.Spectrum {
	return l.batches[name]
}

// NumBatches returns the number of batches.
func (l *Library) NumBatches() int {
	return len(l.order)
}

// NumSpectra returns the total spectrum count across batches.
func (l *Library) NumSpectra() int {
	n := 0
	for _, spectra := range l.batches {
		n += len(spectra)
	}
	return n
}

// Load reads every MGF file in dir into a library. Non-MGF entries are
// skipped. A missing directory yields an empty library rather than an
// error; other directory read failures (e.g. permissions) propagate.
// Two files normalizing to the same stem collide last-write-wins, with
// a warning so the overwrite is observable.
func Load(dir string) (*Library, error) {
	lib := NewLibrary()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lib, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), Extension) {
			continue
		}

		batch := name[:len(name)-len(Extension)]
		if _, ok := lib.batches[batch]; ok {
			log.Printf("warning: %s replaces an earlier file with batch name %q", name, batch)
		}

		spectra, err := readFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		lib.Add(batch, spectra)
	}

	return lib, nil
}

// LoadPath accepts either a directory of MGF files or a single MGF
// file, which becomes a one-batch library. Any other path yields
// ErrInputNotFound.
func LoadPath(path string) (*Library, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}

	if info.IsDir() {
		return Load(path)
	}

	name := info.Name()
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	spectra, err := readFile(path)
	if err != nil {
		return nil, err
	}

	lib := NewLibrary()
	lib.Add(name[:len(name)-len(Extension)], spectra)
	return lib, nil
}

// readFile streams all spectra out of one MGF file. A record that fails
// to parse ends the file's stream but keeps everything read before it:
// a file full of junk simply contributes zero spectra.
func readFile(path string) ([]*core.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	spectra := []*core.Spectrum{}
	r := mgf.NewReader(f)
	for r.Next() {
		spec := r.Spectrum()
		spec.SourceFile = filepath.Base(path)
		spectra = append(spectra, spec)
	}
	if err := r.Err(); err != nil {
		log.Printf("warning: %s: %v (keeping %d spectra read before the error)", path, err, len(spectra))
	}

	return spectra, nil
}
