// Package sii computes the Speech Intelligibility Index of ANSI S3.5-1997
// using the one-third-octave band procedure: a value in [0, 1] predicting
// the proportion of speech cues audible to a listener given the speech
// spectrum, the background noise spectrum, and the listener's hearing
// thresholds.
//
// Score implements the core procedure of Section 4 of the standard. It
// consumes equivalent (free-field referenced) spectrum levels, which the
// three input methods of Section 5 derive from physical measurements:
//
//   - DirectMeasurement: speech and noise spectrum levels measured or
//     estimated at the listener's position (Section 5.1)
//   - ModulationTransfer: MTFI/CSNSL measurements at the listener's
//     position (Section 5.2)
//   - ModulationTransferEardrum: MTFI/CSNSL measurements at the listener's
//     eardrum (Section 5.3)
//
// # Usage
//
//	levels, err := sii.DirectMeasurement(sii.EffortSource(bands.EffortNormal), sii.DirectConfig{
//		Distance: 2.0, // talker two meters away
//		Channels: 2,   // binaural listening
//	})
//	if err != nil {
//		...
//	}
//	index, err := sii.ScoreLevels(levels, sii.ScoreConfig{})
//
// All functions are pure: they validate their inputs, read only the
// immutable tables of the bands package, and are safe for concurrent use.
package sii
