package bands_test

import (
	"fmt"

	"github.com/cwbudde/algo-sii/bands"
)

func ExampleSpeechSpectrum() {
	levels, err := bands.SpeechSpectrum(bands.EffortNormal)
	if err != nil {
		panic(err)
	}

	fc := bands.CenterFrequencies()
	for _, band := range []int{0, 8, 17} {
		fmt.Printf("%4.0f Hz: %5.2f dB\n", fc[band], levels[band])
	}

	// Output:
	//  160 Hz: 32.41 dB
	// 1000 Hz: 25.01 dB
	// 8000 Hz:  1.13 dB
}

func ExampleParseTestMaterial() {
	m, err := bands.ParseTestMaterial("spin")
	if err != nil {
		panic(err)
	}

	weights, err := bands.Importance(m)
	if err != nil {
		panic(err)
	}

	fmt.Printf("material %d (%s), band 11 importance %.4f\n", m, m, weights[10])

	// Output:
	// material 7 (spin), band 11 importance 0.1075
}
