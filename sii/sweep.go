package sii

import "github.com/cwbudde/algo-sii/bands"

// DistanceSweep computes the free-field SII for a named vocal effort at
// each of the given talker-to-listener distances in meters, using the
// Section 5.1 input method with the default average-speech importance.
// The config's Distance field is overridden per evaluation; its remaining
// fields (noise, gain, thresholds, channels) apply to every point.
func DistanceSweep(effort bands.VocalEffort, distances []float64, cfg DirectConfig) ([]float64, error) {
	out := make([]float64, len(distances))

	for i, d := range distances {
		pointCfg := cfg
		pointCfg.Distance = d

		levels, err := DirectMeasurement(EffortSource(effort), pointCfg)
		if err != nil {
			return nil, err
		}

		index, err := ScoreLevels(levels, ScoreConfig{})
		if err != nil {
			return nil, err
		}
		out[i] = index
	}

	return out, nil
}
