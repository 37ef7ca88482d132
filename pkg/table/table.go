// Package table builds the per-spectrum summary table: one row per
// spectrum with identifying metadata and a compact encoding of its most
// significant fragment peaks.
package table

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/core"
	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/loader"
)

// Default selection parameters.
const (
	DefaultTopN      = 6
	DefaultMinRelPct = 1.0

	defaultMZDecimals  = 4
	defaultRelDecimals = 1
)

// Options configures summary-table construction.
type Options struct {
	TopN        int     // maximum fragments kept per spectrum
	MinRelPct   float64 // inclusive relative-intensity cutoff, percent
	MZDecimals  int     // m/z rounding precision
	RelDecimals int     // relative-intensity rounding precision
}

// DefaultOptions returns the standard parameter set.
func DefaultOptions() Options {
	return Options{
		TopN:        DefaultTopN,
		MinRelPct:   DefaultMinRelPct,
		MZDecimals:  defaultMZDecimals,
		RelDecimals: defaultRelDecimals,
	}
}

func (o Options) withDefaults() Options {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.MZDecimals <= 0 {
		o.MZDecimals = defaultMZDecimals
	}
	if o.RelDecimals <= 0 {
		o.RelDecimals = defaultRelDecimals
	}
	return o
}

// Row is one summary record. Column tags define the output order;
// absent values marshal as empty cells.
type Row struct {
	Batch         string      `csv:"batch"`
	Scans         null.String `csv:"scans"`
	ScanNumber    null.Int    `csv:"scan_number"`
	PrecursorMass null.Float  `csv:"precursor_mass"`
	NFragments    int         `csv:"n_fragments"`
	Fragments     string      `csv:"fragments"`
}

// Build produces one row per spectrum, batches in library order and
// spectra in file order. Every structurally parsed spectrum yields
// exactly one row; degenerate spectra get an empty fragment string, not
// a dropped row.
func Build(lib *loader.Library, opts Options) []Row {
	opts = opts.withDefaults()

	rows := []Row{}
	for _, batch := range lib.BatchNames() {
		for _, spec := range lib.Batch(batch) {
			rows = append(rows, buildRow(batch, spec, opts))
		}
	}
	return rows
}

func buildRow(batch string, spec *core.Spectrum, opts Options) Row {
	scans, scanNumber := ExtractScans(spec.Params)
	frag := SelectFragments(spec.MZ, spec.Intensity, opts)

	n := 0
	if frag != "" {
		n = strings.Count(frag, ";") + 1
	}

	return Row{
		Batch:         batch,
		Scans:         scans,
		ScanNumber:    scanNumber,
		PrecursorMass: ExtractPrecursorMZ(spec.Params),
		NFragments:    n,
		Fragments:     frag,
	}
}

// scanKeys is the literal priority list for scan identifiers. The case
// variants are spelled out on purpose: matching is exact, in this
// order, not case-insensitive.
var scanKeys = []string{
	"SCANS", "scans", "scan", "SCAN",
	"scan_number", "SCAN_NUMBER", "FEATURE_ID", "feature_id",
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractScans resolves the scan identifier: the raw value of the first
// scan key present (sequences collapse to their first element) and a
// best-effort integer, the first run of decimal digits anywhere in the
// raw value's string form.
func ExtractScans(p core.Params) (null.String, null.Int) {
	for _, key := range scanKeys {
		v, ok := p.Get(key)
		if !ok {
			continue
		}

		first, ok := v.First()
		if !ok {
			// An empty sequence resolves the key to no value; the
			// search does not fall through to later keys.
			return null.String{}, null.Int{}
		}

		raw := first.String()
		num := null.Int{}
		if m := digitRun.FindString(strings.TrimSpace(raw)); m != "" {
			if n, err := strconv.ParseInt(m, 10, 64); err == nil {
				num = null.IntFrom(n)
			}
		}
		return null.StringFrom(raw), num
	}

	return null.String{}, null.Int{}
}

// precursorAlternates are the fallback spellings tried, in order and
// case-sensitively, when no pepmass key is present.
var precursorAlternates = []string{
	"precursor_mz", "precursorMz", "parentmass", "ParentMass",
	"ms2precursor", "MS2Precursor",
}

// ExtractPrecursorMZ resolves the precursor m/z. Keys spelled pepmass
// in any casing are tried first, in header order; a key whose value
// fails to coerce is skipped, not fatal. Absence is null, never zero.
func ExtractPrecursorMZ(p core.Params) null.Float {
	for _, key := range p.Keys() {
		if !strings.EqualFold(key, "pepmass") {
			continue
		}
		v, _ := p.Get(key)
		if f, ok := v.Float(); ok {
			return null.FloatFrom(f)
		}
	}

	for _, key := range precursorAlternates {
		v, ok := p.Get(key)
		if !ok {
			continue
		}
		if f, ok := v.Float(); ok {
			return null.FloatFrom(f)
		}
	}

	return null.Float{}
}
