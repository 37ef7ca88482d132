// Package core provides the in-memory model for MGF spectra and the
// header value types shared by the reader, loader and table builder.
package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spectrum represents a single measured scan: its header parameters plus
// parallel m/z and intensity arrays. The arrays are index-correlated;
// when their lengths disagree the spectrum is treated downstream as
// having zero usable fragments rather than rejected.
type Spectrum struct {
	Params    Params
	MZ        []float64
	Intensity []float64

	// SourceFile is the file the spectrum was read from.
	SourceFile string
}

// PeakCount returns the number of usable peaks: zero when the parallel
// arrays disagree in length.
func (s *Spectrum) PeakCount() int {
	if len(s.MZ) != len(s.Intensity) {
		return 0
	}
	return len(s.MZ)
}

// BasePeak returns the maximum intensity across all peaks. ok is false
// for spectra with no usable peaks or a non-finite or non-positive
// maximum, which covers all-zero and otherwise degenerate scans.
func (s *Spectrum) BasePeak() (float64, bool) {
	if s.PeakCount() == 0 {
		return 0, false
	}
	base := floats.Max(s.Intensity)
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 {
		return 0, false
	}
	return base, true
}
