package sii

import (
	"fmt"

	"github.com/cwbudde/algo-sii/bands"
)

// Default equivalent noise spectrum level in dB when no noise is supplied
// (note in standard section 4.2).
const defaultNoiseLevel = -50.0

// Binaural listening lowers the effective hearing threshold by a fixed
// summation benefit (standard section 5.1.5).
const binauralBenefit = 1.7

// Levels is the canonical input triple of the Section 4 procedure: the
// equivalent speech spectrum level, equivalent noise spectrum level, and
// equivalent hearing threshold level, each with one dB value per band.
// The input methods of Section 5 produce it; ScoreLevels consumes it.
type Levels struct {
	Speech    []float64
	Noise     []float64
	Threshold []float64
}

// checkVector validates an optional band vector. A nil vector is allowed
// (the caller substitutes a default); anything else must have exactly one
// value per band.
func checkVector(v []float64, sentinel error) error {
	if v != nil && len(v) != bands.Count {
		return fmt.Errorf("%w: got %d", sentinel, len(v))
	}
	return nil
}

// defaulted returns a fresh band vector: a copy of v when supplied, or a
// uniform vector at the given level when v is nil.
func defaulted(v []float64, level float64) []float64 {
	out := make([]float64, bands.Count)
	if v == nil {
		for i := range out {
			out[i] = level
		}
		return out
	}
	copy(out, v)
	return out
}
