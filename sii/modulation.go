package sii

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sii/bands"
	"github.com/cwbudde/algo-vecmath"
)

// Apparent speech-to-noise ratios are limited to this range before
// averaging (standard section 5.2.3.5).
const snrLimit = 15.0

// Offset keeping the SNR ratio finite when a transfer value is exactly
// 0 or 1; both are physically valid measurements.
const epsilon = 0x1p-52

// ModulationConfig holds the optional parameters of the Section 5.2 input
// method.
type ModulationConfig struct {
	// InsertionGain in dB per band. Nil means 0 dB.
	InsertionGain []float64

	// HearingThreshold in dB HL per band. Nil means 0 dB HL.
	HearingThreshold []float64

	// Binaural selects two-eared listening.
	Binaural bool
}

// EardrumConfig holds the optional parameters of the Section 5.3 input
// method. Eardrum-referenced measurements already reflect any coupling, so
// there is no insertion gain.
type EardrumConfig struct {
	// HearingThreshold in dB HL per band. Nil means 0 dB HL.
	HearingThreshold []float64

	// Binaural selects two-eared listening.
	Binaural bool
}

// ModulationTransfer derives the equivalent speech, noise, and threshold
// spectrum levels from the combined speech-and-noise spectrum level and the
// modulation transfer function for intensity, both measured at the
// listener's position (standard section 5.2).
//
// csns holds the combined speech and noise spectrum level in dB per band.
// mtf is the 18x9 modulation transfer matrix: one row per band, one column
// per modulation frequency (see bands.ModulationFrequencies).
func ModulationTransfer(csns []float64, mtf [][]float64, cfg ModulationConfig) (Levels, error) {
	if err := checkVector(cfg.InsertionGain, errGainLength); err != nil {
		return Levels{}, err
	}

	speech, noise, err := equivalentFromTransfer(csns, mtf)
	if err != nil {
		return Levels{}, err
	}

	threshold, err := eardrumThreshold(cfg.HearingThreshold, cfg.Binaural)
	if err != nil {
		return Levels{}, err
	}

	// Eq. 23 and 24 assume 0 dB insertion gain; the gain is applied on top.
	if cfg.InsertionGain != nil {
		gain := defaulted(cfg.InsertionGain, 0)
		vecmath.AddBlockInPlace(speech, gain)
		vecmath.AddBlockInPlace(noise, gain)
	}

	return Levels{Speech: speech, Noise: noise, Threshold: threshold}, nil
}

// ModulationTransferEardrum derives the equivalent spectrum levels from
// MTFI/CSNSL measurements taken at the listener's eardrum (standard
// section 5.3). The apparent levels are projected back into the free field
// by removing the free-field-to-eardrum transfer function.
func ModulationTransferEardrum(csns []float64, mtf [][]float64, cfg EardrumConfig) (Levels, error) {
	speech, noise, err := equivalentFromTransfer(csns, mtf)
	if err != nil {
		return Levels{}, err
	}

	threshold, err := eardrumThreshold(cfg.HearingThreshold, cfg.Binaural)
	if err != nil {
		return Levels{}, err
	}

	// Eq. 27 and 28.
	transfer, _ := bands.FreeFieldToEardrum()
	for i := range speech {
		speech[i] -= transfer[i]
		noise[i] -= transfer[i]
	}

	return Levels{Speech: speech, Noise: noise, Threshold: threshold}, nil
}

// equivalentFromTransfer computes the apparent speech and noise spectrum
// levels shared by the 5.2 and 5.3 methods (Eq. 22 through 24).
func equivalentFromTransfer(csns []float64, mtf [][]float64) (speech, noise []float64, err error) {
	if len(csns) != bands.Count {
		return nil, nil, fmt.Errorf("%w: got %d", errCombinedLength, len(csns))
	}
	if len(mtf) != bands.Count {
		return nil, nil, fmt.Errorf("%w: got %d rows", errTransferShape, len(mtf))
	}
	for i, row := range mtf {
		if len(row) != bands.ModulationCount {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns", errTransferShape, i+1, len(row))
		}
	}

	speech = make([]float64, bands.Count)
	noise = make([]float64, bands.Count)
	snrs := make([]float64, bands.ModulationCount)

	for i, row := range mtf {
		// Apparent speech-to-noise ratio per modulation frequency (Eq. 22),
		// limited to +-15 dB and averaged across modulation frequencies.
		for j, m := range row {
			snr := 10 * math.Log10((m+epsilon)/(1-m+epsilon))
			snrs[j] = math.Min(snrLimit, math.Max(-snrLimit, snr))
		}
		snr := vecmath.Sum(snrs) / bands.ModulationCount

		// Apparent speech and noise spectrum levels (Eq. 23 and 24).
		speech[i] = snr + 10*math.Log10(math.Pow(10, csns[i]/10)/(1+math.Pow(10, snr/10)))
		noise[i] = speech[i] - snr
	}

	return speech, noise, nil
}

func eardrumThreshold(threshold []float64, binaural bool) ([]float64, error) {
	if err := checkVector(threshold, errThresholdLength); err != nil {
		return nil, err
	}

	out := defaulted(threshold, 0)
	if binaural {
		for i := range out {
			out[i] -= binauralBenefit
		}
	}
	return out, nil
}
