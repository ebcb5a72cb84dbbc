package sii

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sii/bands"
	"github.com/cwbudde/algo-vecmath"
)

// SpeechSource selects how the speech term of the Section 5.1 input method
// is specified: either a named vocal effort at the standard reference
// condition, or spectrum levels measured at the listener's position.
// The zero value is invalid; construct with EffortSource or LevelSource.
type SpeechSource struct {
	kind   sourceKind
	effort bands.VocalEffort
	levels []float64
}

type sourceKind int

const (
	sourceUnset sourceKind = iota
	sourceEffort
	sourceLevels
)

// EffortSource uses the standard speech spectrum for the given vocal
// effort, which assumes the reference communication condition (talker one
// meter in front of the listener).
func EffortSource(effort bands.VocalEffort) SpeechSource {
	return SpeechSource{kind: sourceEffort, effort: effort}
}

// LevelSource uses speech spectrum levels in dB SPL measured at the
// listener's position, one value per band.
func LevelSource(levels []float64) SpeechSource {
	return SpeechSource{kind: sourceLevels, levels: levels}
}

// DirectConfig holds the optional parameters of the Section 5.1 input
// method. The zero value requests the standard defaults: no noise floor
// beyond -50 dB, flat 0 dB insertion gain, the 1 m reference distance,
// normal hearing, and monaural listening.
type DirectConfig struct {
	// Noise is the noise spectrum level in dB SPL at the listener's
	// position. Nil means the default equivalent level of -50 dB.
	Noise []float64

	// InsertionGain in dB per band (e.g. a hearing aid, or negative values
	// for hearing protectors). Nil means 0 dB.
	InsertionGain []float64

	// Distance from source to listener in meters. Zero means the 1 m
	// reference distance. Only meaningful for an EffortSource; ignored
	// with an advisory for a LevelSource.
	Distance float64

	// HearingThreshold in dB HL per band. Nil means 0 dB HL.
	HearingThreshold []float64

	// Channels is 1 for monaural or 2 for binaural listening. Zero means
	// monaural.
	Channels int

	// Warnf receives advisory messages (currently only the ignored-distance
	// condition). Nil discards them.
	Warnf func(format string, args ...any)
}

// DirectMeasurement derives the equivalent speech, noise, and threshold
// spectrum levels from direct measurements or estimates at the listener's
// position (standard section 5.1). The result is intended to be passed to
// ScoreLevels.
func DirectMeasurement(src SpeechSource, cfg DirectConfig) (Levels, error) {
	if err := checkVector(cfg.Noise, errNoiseLength); err != nil {
		return Levels{}, err
	}
	if err := checkVector(cfg.InsertionGain, errGainLength); err != nil {
		return Levels{}, err
	}
	if err := checkVector(cfg.HearingThreshold, errThresholdLength); err != nil {
		return Levels{}, err
	}

	channels := cfg.Channels
	if channels == 0 {
		channels = 1
	}
	if channels != 1 && channels != 2 {
		return Levels{}, errChannels
	}

	gain := defaulted(cfg.InsertionGain, 0)

	var speech []float64
	switch src.kind {
	case sourceEffort:
		spectrum, err := bands.SpeechSpectrum(src.effort)
		if err != nil {
			return Levels{}, err
		}

		distance := cfg.Distance
		if distance == 0 {
			distance = 1.0 // reference communication condition
		}
		if distance < 0 {
			return Levels{}, errDistance
		}

		// Inverse-square spreading from the 1 m reference (Eq. 16).
		loss := 20 * math.Log10(distance)
		for i := range spectrum {
			spectrum[i] -= loss
		}
		vecmath.AddBlockInPlace(spectrum, gain)
		speech = spectrum

	case sourceLevels:
		if len(src.levels) != bands.Count {
			return Levels{}, fmt.Errorf("%w: got %d", errSpeechLength, len(src.levels))
		}
		speech = defaulted(src.levels, 0)
		vecmath.AddBlockInPlace(speech, gain) // Eq. 17
		if cfg.Distance != 0 && cfg.Warnf != nil {
			cfg.Warnf("distance applies only to named vocal efforts and was ignored")
		}

	default:
		return Levels{}, errNoSpeechSource
	}

	noise := defaulted(cfg.Noise, defaultNoiseLevel)
	if cfg.Noise != nil {
		vecmath.AddBlockInPlace(noise, gain) // Eq. 18
	}

	threshold := defaulted(cfg.HearingThreshold, 0)
	if channels == 2 {
		for i := range threshold {
			threshold[i] -= binauralBenefit
		}
	}

	return Levels{Speech: speech, Noise: noise, Threshold: threshold}, nil
}
