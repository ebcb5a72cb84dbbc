package bands

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Count is the number of one-third-octave bands in the procedure.
	Count = 18

	// ModulationCount is the number of modulation frequencies used by the
	// MTFI-based input methods (standard section 5.2.3.3).
	ModulationCount = 9
)

// Band center frequencies in Hz (Table 3, column 2).
var centerFrequencies = [Count]float64{
	160, 200, 250, 315, 400, 500, 630, 800, 1000,
	1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300, 8000,
}

// Modulation frequencies in Hz (section 5.2.3.3).
var modulationFrequencies = [ModulationCount]float64{
	0.5, 1, 1.5, 2, 3, 4, 6, 8, 16,
}

// Reference internal noise spectrum level in dB (Table 3, column 7).
var internalNoise = [Count]float64{
	0.6, -1.7, -3.9, -6.1, -8.2, -9.7, -10.8, -11.9, -12.5,
	-13.5, -15.4, -17.7, -21.2, -24.2, -25.9, -23.6, -15.8, -7.1,
}

// Free-field-to-eardrum transfer function in dB (Table 3, column 6).
var eardrumTransfer = [Count]float64{
	0, 0.50, 1.00, 1.40, 1.50, 1.80, 2.40, 3.10, 2.60,
	3.00, 6.10, 12.00, 16.80, 15.00, 14.30, 10.70, 6.40, 1.80,
}

// Standard speech spectrum levels in dB (Table 3), one column per vocal
// effort: normal, raised, loud, shout.
var speechSpectra = [Count][4]float64{
	{32.41, 33.81, 35.29, 30.77},
	{34.48, 33.92, 37.76, 36.65},
	{34.75, 38.98, 41.55, 42.50},
	{33.98, 38.57, 43.78, 46.51},
	{34.59, 39.11, 43.30, 47.40},
	{34.27, 40.15, 44.85, 49.24},
	{32.06, 38.78, 45.55, 51.21},
	{28.30, 36.37, 44.05, 51.44},
	{25.01, 33.86, 42.16, 51.31},
	{23.00, 31.89, 40.53, 49.63},
	{20.15, 28.58, 37.70, 47.65},
	{17.32, 25.32, 34.39, 44.32},
	{13.18, 22.35, 30.98, 40.80},
	{11.55, 20.15, 28.21, 38.13},
	{9.33, 16.78, 25.41, 34.41},
	{5.31, 11.47, 18.35, 28.24},
	{2.59, 7.67, 13.87, 23.45},
	{1.13, 5.07, 11.39, 20.72},
}

// Band 1 bandwidth in dB (Table 3, column 3); each subsequent band adds 1 dB.
const firstBandwidthDB = 15.65

// CenterFrequencies returns the 18 band center frequencies in Hz.
func CenterFrequencies() []float64 {
	out := make([]float64, Count)
	copy(out, centerFrequencies[:])
	return out
}

// ModulationFrequencies returns the 9 modulation frequencies in Hz used by
// the MTFI input methods.
func ModulationFrequencies() []float64 {
	out := make([]float64, ModulationCount)
	copy(out, modulationFrequencies[:])
	return out
}

// BandwidthDB returns the per-band bandwidth expressed in dB re 1 Hz
// (15.65 dB for band 1, stepping by 1 dB per band).
func BandwidthDB() []float64 {
	out := make([]float64, Count)
	for i := range out {
		out[i] = firstBandwidthDB + float64(i)
	}
	return out
}

// BandwidthHz returns the per-band bandwidth in Hz, the linear form of
// BandwidthDB. Summing 10^(level/10) weighted by these bandwidths yields
// the overall band power.
func BandwidthHz() []float64 {
	out := make([]float64, Count)
	for i := range out {
		out[i] = math.Pow(10, (firstBandwidthDB+float64(i))/10)
	}
	return out
}

// InternalNoise returns the reference internal noise spectrum level in dB.
func InternalNoise() []float64 {
	out := make([]float64, Count)
	copy(out, internalNoise[:])
	return out
}

// FreeFieldToEardrum returns the free-field-to-eardrum transfer function in
// dB together with the matching band center frequencies in Hz.
func FreeFieldToEardrum() (transferDB, centerHz []float64) {
	out := make([]float64, Count)
	copy(out, eardrumTransfer[:])
	return out, CenterFrequencies()
}

// VocalEffort identifies one of the four standard speech spectra of Table 3.
type VocalEffort int

const (
	// EffortNormal is conversational speech at the reference distance.
	EffortNormal VocalEffort = iota
	EffortRaised
	EffortLoud
	EffortShout

	effortCount
)

// String returns the lower-case effort name used by ParseVocalEffort.
func (e VocalEffort) String() string {
	switch e {
	case EffortNormal:
		return "normal"
	case EffortRaised:
		return "raised"
	case EffortLoud:
		return "loud"
	case EffortShout:
		return "shout"
	default:
		return fmt.Sprintf("VocalEffort(%d)", int(e))
	}
}

// ParseVocalEffort resolves a case-insensitive effort name
// ("normal", "raised", "loud", "shout") to its VocalEffort value.
func ParseVocalEffort(name string) (VocalEffort, error) {
	switch strings.ToLower(name) {
	case "normal":
		return EffortNormal, nil
	case "raised":
		return EffortRaised, nil
	case "loud":
		return EffortLoud, nil
	case "shout":
		return EffortShout, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownEffort, name)
	}
}

// SpeechSpectrum returns the standard speech spectrum level in dB for the
// given vocal effort (Table 3).
func SpeechSpectrum(effort VocalEffort) ([]float64, error) {
	if effort < 0 || effort >= effortCount {
		return nil, fmt.Errorf("%w: %d", errUnknownEffort, int(effort))
	}
	out := make([]float64, Count)
	for i := range out {
		out[i] = speechSpectra[i][effort]
	}
	return out, nil
}

// SpeechSpectra returns the full 18x4 speech spectrum table, one row per
// band, columns ordered normal, raised, loud, shout.
func SpeechSpectra() [][]float64 {
	out := make([][]float64, Count)
	for i := range out {
		row := make([]float64, len(speechSpectra[i]))
		copy(row, speechSpectra[i][:])
		out[i] = row
	}
	return out
}
