// Package mgf provides a streaming reader for MGF (Mascot Generic
// Format) peak-list files.
package mgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/core"
)

// Reader provides streaming access to MGF files. It reads strictly
// sequentially and never builds an index over the input, so files with
// malformed or absent trailing sections parse the same as clean ones.
type Reader struct {
	scanner     *bufio.Scanner
	lineNum     int
	currentSpec *core.Spectrum
	err         error
}

// NewReader creates a new MGF reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Next advances to the next spectrum. Returns false when no more spectra
// or error.
func (r *Reader) Next() bool {
	r.currentSpec = nil

	spec, err := r.readSpectrum()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}

	r.currentSpec = spec
	return true
}

// Spectrum returns the current spectrum.
func (r *Reader) Spectrum() *core.Spectrum {
	return r.currentSpec
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

// readSpectrum reads a single BEGIN IONS / END IONS record.
func (r *Reader) readSpectrum() (*core.Spectrum, error) {
	spec := &core.Spectrum{
		MZ:        []float64{},
		Intensity: []float64{},
	}

	inRecord := false

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		if line == "" || isComment(line) {
			continue
		}

		if !inRecord {
			// Anything before BEGIN IONS (global headers, junk
			// between records) is skipped.
			if strings.EqualFold(line, "BEGIN IONS") {
				inRecord = true
			}
			continue
		}

		if strings.EqualFold(line, "END IONS") {
			return spec, nil
		}

		// Header lines carry '='; peak lines never do.
		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			spec.Params.Set(key, parseHeaderValue(key, val))
			continue
		}

		mz, intensity, err := parsePeak(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
		}
		spec.MZ = append(spec.MZ, mz)
		spec.Intensity = append(spec.Intensity, intensity)
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}

	// Truncated record at EOF: return what was read.
	if inRecord && (spec.Params.Len() > 0 || len(spec.MZ) > 0) {
		return spec, nil
	}

	return nil, io.EOF
}

// isComment reports whether a line uses one of the comment markers MGF
// producers emit.
func isComment(line string) bool {
	switch line[0] {
	case '#', ';', '!', '/':
		return true
	}
	return false
}

// parseHeaderValue classifies a header value by key. PEPMASS becomes a
// number list and RTINSECONDS a number when they parse cleanly; every
// other value, and any value that does not parse, stays text as found.
func parseHeaderValue(key, val string) core.Value {
	switch strings.ToUpper(key) {
	case "PEPMASS":
		toks := strings.Fields(val)
		if len(toks) == 0 {
			return core.Text(val)
		}
		nums := make([]float64, 0, len(toks))
		for _, tok := range toks {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return core.Text(val)
			}
			nums = append(nums, f)
		}
		return core.NumberList(nums...)

	case "RTINSECONDS":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return core.Text(val)
		}
		return core.Number(f)
	}

	return core.Text(val)
}

// parsePeak parses a single peak line (format: "mz intensity [charge]").
func parsePeak(line string) (float64, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("invalid peak format, expected at least 2 fields")
	}

	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid m/z value: %w", err)
	}

	intensity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid intensity value: %w", err)
	}

	return mz, intensity, nil
}
