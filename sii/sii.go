package sii

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sii/bands"
	"github.com/cwbudde/algo-vecmath"
)

// ScoreConfig holds the optional parameters of Score. The zero value
// requests the standard defaults: -50 dB equivalent noise, 0 dB HL
// thresholds, and the average-speech band-importance function.
type ScoreConfig struct {
	// Noise is the equivalent noise spectrum level in dB per band. Nil
	// means the default of -50 dB (note in standard section 4.2).
	Noise []float64

	// HearingThreshold is the equivalent hearing threshold level in dB HL
	// per band. Nil means 0 dB HL.
	HearingThreshold []float64

	// Importance selects the band-importance function. The zero value
	// selects bands.AverageSpeech.
	Importance bands.Selector
}

// Score computes the Speech Intelligibility Index for the given equivalent
// speech spectrum level (standard section 4, one-third-octave procedure).
//
// For physically sensible inputs the result lies in [0, 1]. The per-band
// audibility terms are clamped but the final importance-weighted sum is
// reported as computed, so extreme inputs are not re-clamped.
func Score(speech []float64, cfg ScoreConfig) (float64, error) {
	if len(speech) != bands.Count {
		return 0, fmt.Errorf("%w: got %d", errSpeechLength, len(speech))
	}
	if err := checkVector(cfg.Noise, errNoiseLength); err != nil {
		return 0, err
	}
	if err := checkVector(cfg.HearingThreshold, errThresholdLength); err != nil {
		return 0, err
	}

	importance, err := cfg.Importance.Weights()
	if err != nil {
		return 0, err
	}

	noise := defaulted(cfg.Noise, defaultNoiseLevel)
	threshold := defaulted(cfg.HearingThreshold, 0)

	freq := bands.CenterFrequencies()
	internal := bands.InternalNoise()
	normal, err := bands.SpeechSpectrum(bands.EffortNormal)
	if err != nil {
		return 0, err
	}

	// Self-speech masking spectrum (4.3.2.1, Eq. 5) and larger of masker
	// and noise per band (4.3.2.2).
	masker := make([]float64, bands.Count)
	for i := range masker {
		masker[i] = math.Max(speech[i]-24, noise[i])
	}

	// Slope per band of the upward spread of masking (4.3.2.3, Eq. 7).
	slope := make([]float64, bands.Count)
	for i := range slope {
		slope[i] = 0.6*(masker[i]+10*math.Log10(freq[i])-6.353) - 80
	}

	// Equivalent masking spectrum level (4.3.2.4/4.3.2.5, Eq. 9). Each
	// band accumulates the spread of masking from every lower band, so the
	// loop must run in increasing band order.
	masking := make([]float64, bands.Count)
	masking[0] = masker[0]
	for i := 1; i < bands.Count; i++ {
		sum := math.Pow(10, 0.1*noise[i])
		for j := 0; j < i; j++ {
			spread := 3.32 * slope[j] * math.Log10(0.89*freq[i]/freq[j])
			sum += math.Pow(10, 0.1*(masker[j]+spread))
		}
		masking[i] = 10 * math.Log10(sum)
	}

	audibility := make([]float64, bands.Count)
	for i := range audibility {
		// Disturbance: larger of masking and equivalent internal noise
		// (4.4, Eq. 10 and 4.5).
		disturbance := math.Max(masking[i], internal[i]+threshold[i])

		// Level distortion factor (4.6, Eq. 11).
		distortion := math.Min(1, 1-(speech[i]-normal[i]-10)/160)

		// Temporary band audibility (4.7.1, Eq. 12).
		audible := (speech[i] - disturbance + 15) / 30
		audible = math.Min(1, math.Max(0, audible))

		// Band audibility function (4.7.2, Eq. 13).
		audibility[i] = distortion * audible
	}

	// Importance-weighted sum (4.8, Eq. 14).
	return vecmath.DotProduct(importance, audibility), nil
}

// ScoreLevels computes the index from a canonical triple as produced by the
// Section 5 input methods. The triple's noise and threshold take the place
// of the corresponding ScoreConfig fields; the config supplies the
// band-importance selection.
func ScoreLevels(l Levels, cfg ScoreConfig) (float64, error) {
	cfg.Noise = l.Noise
	cfg.HearingThreshold = l.Threshold
	return Score(l.Speech, cfg)
}
