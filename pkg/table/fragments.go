package table

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/RicardoMBorges/mgf-2-fragment-tables/pkg/core"
)

// SelectFragments encodes the most significant peaks of a spectrum as
// semicolon-separated "mz:rel%" tokens. Peaks are expressed relative to
// the base peak, cut at MinRelPct (inclusive), sorted by relative
// intensity descending with m/z ascending as the tie-break, and only
// then truncated to TopN. Degenerate input (empty or mismatched arrays,
// non-finite or non-positive base peak, nothing above the cutoff)
// yields the empty string.
func SelectFragments(mzs, intens []float64, opts Options) string {
	opts = opts.withDefaults()

	if len(mzs) == 0 || len(intens) == 0 || len(mzs) != len(intens) {
		return ""
	}

	base := floats.Max(intens)
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 {
		return ""
	}

	type fragment struct {
		mz  float64
		rel float64
	}

	kept := make([]fragment, 0, len(mzs))
	for i := range mzs {
		rel := 100 * intens[i] / base
		if rel >= opts.MinRelPct {
			kept = append(kept, fragment{mz: mzs[i], rel: rel})
		}
	}
	if len(kept) == 0 {
		return ""
	}

	// Deterministic order: intensity ties are common in practice, so
	// the m/z tie-break matters for reproducible output.
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].rel != kept[j].rel {
			return kept[i].rel > kept[j].rel
		}
		return kept[i].mz < kept[j].mz
	})

	if len(kept) > opts.TopN {
		kept = kept[:opts.TopN]
	}

	parts := make([]string, len(kept))
	for i, f := range kept {
		parts[i] = core.FormatFloat(core.RoundTo(f.mz, opts.MZDecimals)) +
			":" + core.FormatFloat(core.RoundTo(f.rel, opts.RelDecimals))
	}
	return strings.Join(parts, ";")
}
