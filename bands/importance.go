package bands

import (
	"fmt"
	"strings"
)

// Band-importance functions (Table 3 column 8 and Table B.2; CST from
// Sherbecoe and Studebaker, Ear and Hearing 2003). One row per band, one
// column per test material, ordered by material number 1..8.
var importanceTable = [Count][8]float64{
	{0.0083, 0, 0.0365, 0.0168, 0, 0.0114, 0, 0.0082},
	{0.0095, 0, 0.0279, 0.0130, 0.0240, 0.0153, 0.0255, 0.0168},
	{0.0150, 0.0153, 0.0405, 0.0211, 0.0330, 0.0179, 0.0256, 0.0255},
	{0.0289, 0.0284, 0.0500, 0.0344, 0.0390, 0.0558, 0.0360, 0.0374},
	{0.0440, 0.0363, 0.0530, 0.0517, 0.0571, 0.0898, 0.0362, 0.0637},
	{0.0578, 0.0422, 0.0518, 0.0737, 0.0691, 0.0944, 0.0514, 0.0694},
	{0.0653, 0.0509, 0.0514, 0.0658, 0.0781, 0.0709, 0.0616, 0.0529},
	{0.0711, 0.0584, 0.0575, 0.0644, 0.0751, 0.0660, 0.0770, 0.0374},
	{0.0818, 0.0667, 0.0717, 0.0664, 0.0781, 0.0628, 0.0718, 0.0441},
	{0.0844, 0.0774, 0.0873, 0.0802, 0.0811, 0.0672, 0.0718, 0.0784},
	{0.0882, 0.0893, 0.0902, 0.0987, 0.0961, 0.0747, 0.1075, 0.1035},
	{0.0898, 0.1104, 0.0938, 0.1171, 0.0901, 0.0755, 0.0921, 0.1023},
	{0.0868, 0.1120, 0.0928, 0.0932, 0.0781, 0.0820, 0.1026, 0.0926},
	{0.0844, 0.0981, 0.0678, 0.0783, 0.0691, 0.0808, 0.0922, 0.0738},
	{0.0771, 0.0867, 0.0498, 0.0562, 0.0480, 0.0483, 0.0719, 0.0596},
	{0.0527, 0.0728, 0.0312, 0.0337, 0.0330, 0.0453, 0.0461, 0.0454},
	{0.0364, 0.0551, 0.0215, 0.0177, 0.0270, 0.0274, 0.0306, 0.0365},
	{0.0185, 0, 0.0253, 0.0176, 0.0240, 0.0145, 0, 0.0275},
}

// TestMaterial identifies a band-importance function by its 1-based table
// number. Materials 1 through 7 are from the standard; CST (8) is the
// non-standard extension.
type TestMaterial int

const (
	// AverageSpeech is the band-importance function for average speech
	// (Table 3). It is the default material.
	AverageSpeech TestMaterial = iota + 1

	// NonsenseSyllables covers nonsense syllable tests where most English
	// phonemes occur equally often (Table B.2, "NNS").
	NonsenseSyllables

	// CID22 is the CID-22 word test.
	CID22

	// NU6 is the NU6 monosyllable test.
	NU6

	// DRT is the Diagnostic Rhyme Test.
	DRT

	// ShortPassages covers short passages of easy reading material.
	ShortPassages

	// SPIN is the Speech Perception in Noise test.
	SPIN

	// CST is the Connected Speech Test (Sherbecoe and Studebaker 2003).
	CST
)

// materialNames maps each material to its canonical name. The 1-based
// position in this list equals the material's table number, so name parsing
// and numeric lookup always agree (SPIN resolves to material 7).
//
// The upstream data set carries "spin" twice at two different table
// positions; that duplicate is unreachable under a first-match rule, so the
// numeric TestMaterial value is the authoritative identifier and only the
// canonical names below are recognized.
var materialNames = [8]string{
	"standard", "nns", "cid-22", "nu6", "drt", "short", "spin", "cst",
}

// String returns the canonical lower-case name of the test material.
func (m TestMaterial) String() string {
	if m < AverageSpeech || m > CST {
		return fmt.Sprintf("TestMaterial(%d)", int(m))
	}
	return materialNames[m-1]
}

// ParseTestMaterial resolves a case-insensitive material name to its
// TestMaterial number.
func ParseTestMaterial(name string) (TestMaterial, error) {
	lower := strings.ToLower(name)
	for i, n := range materialNames {
		if n == lower {
			return TestMaterial(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownMaterial, name)
}

// Importance returns the band-importance function for the given test
// material as an 18-element weight vector.
func Importance(m TestMaterial) ([]float64, error) {
	if m < AverageSpeech || m > CST {
		return nil, fmt.Errorf("%w: got %d", errMaterialRange, int(m))
	}
	out := make([]float64, Count)
	for i := range out {
		out[i] = importanceTable[i][m-1]
	}
	return out, nil
}

// Selector picks a band-importance function, either by test material
// number, by material name, or as a raw 18-element weight vector. The zero
// value selects AverageSpeech. Construct with SelectMaterial, SelectName,
// or SelectWeights.
type Selector struct {
	kind     selectorKind
	material TestMaterial
	name     string
	weights  []float64
}

type selectorKind int

const (
	selectDefault selectorKind = iota
	selectMaterial
	selectName
	selectWeights
)

// SelectMaterial selects the importance function by material number.
func SelectMaterial(m TestMaterial) Selector {
	return Selector{kind: selectMaterial, material: m}
}

// SelectName selects the importance function by material name.
func SelectName(name string) Selector {
	return Selector{kind: selectName, name: name}
}

// SelectWeights selects a caller-supplied importance function. The weights
// are used as given; they are not normalized to sum to one.
func SelectWeights(weights []float64) Selector {
	return Selector{kind: selectWeights, weights: weights}
}

// Weights resolves the selector to an 18-element importance vector.
func (s Selector) Weights() ([]float64, error) {
	switch s.kind {
	case selectDefault:
		return Importance(AverageSpeech)
	case selectMaterial:
		return Importance(s.material)
	case selectName:
		m, err := ParseTestMaterial(s.name)
		if err != nil {
			return nil, err
		}
		return Importance(m)
	case selectWeights:
		if len(s.weights) != Count {
			return nil, fmt.Errorf("%w: got %d", errWeightsLength, len(s.weights))
		}
		out := make([]float64, Count)
		copy(out, s.weights)
		return out, nil
	default:
		return nil, fmt.Errorf("bands: invalid selector kind %d", int(s.kind))
	}
}
