package bands

import (
	"math"
	"testing"
)

func TestTableShapes(t *testing.T) {
	if got := len(CenterFrequencies()); got != Count {
		t.Fatalf("center frequencies: got %d entries, want %d", got, Count)
	}
	if got := len(ModulationFrequencies()); got != ModulationCount {
		t.Fatalf("modulation frequencies: got %d entries, want %d", got, ModulationCount)
	}
	if got := len(BandwidthDB()); got != Count {
		t.Fatalf("bandwidth dB: got %d entries, want %d", got, Count)
	}
	if got := len(InternalNoise()); got != Count {
		t.Fatalf("internal noise: got %d entries, want %d", got, Count)
	}

	tf, fc := FreeFieldToEardrum()
	if len(tf) != Count || len(fc) != Count {
		t.Fatalf("eardrum transfer: got %d/%d entries, want %d", len(tf), len(fc), Count)
	}
}

func TestBandEdges(t *testing.T) {
	fc := CenterFrequencies()
	if fc[0] != 160 || fc[Count-1] != 8000 {
		t.Fatalf("band range: got %v..%v, want 160..8000", fc[0], fc[Count-1])
	}
	for i := 1; i < Count; i++ {
		if fc[i] <= fc[i-1] {
			t.Fatalf("center frequencies not strictly increasing at band %d", i+1)
		}
	}
}

func TestBandwidthConsistency(t *testing.T) {
	db := BandwidthDB()
	hz := BandwidthHz()
	for i := range db {
		want := firstBandwidthDB + float64(i)
		if math.Abs(db[i]-want) > 1e-12 {
			t.Fatalf("band %d: bandwidth %v dB, want %v", i+1, db[i], want)
		}
		if math.Abs(10*math.Log10(hz[i])-db[i]) > 1e-12 {
			t.Fatalf("band %d: %v Hz does not match %v dB", i+1, hz[i], db[i])
		}
	}
}

// Summing the bandwidth-weighted band powers must reproduce the overall
// SPL printed at the bottom of Table 3 for each vocal effort.
func TestOverallSpeechLevels(t *testing.T) {
	tests := []struct {
		effort VocalEffort
		spl    float64
		eps    float64
	}{
		{EffortNormal, 62.35, 0.01},
		{EffortRaised, 68.34, 0.1},
		{EffortLoud, 74.85, 0.1},
		{EffortShout, 82.30, 0.1},
	}

	hz := BandwidthHz()
	for _, tt := range tests {
		levels, err := SpeechSpectrum(tt.effort)
		if err != nil {
			t.Fatalf("%v: %v", tt.effort, err)
		}

		power := 0.0
		for i, level := range levels {
			power += math.Pow(10, level/10) * hz[i]
		}

		if got := 10 * math.Log10(power); math.Abs(got-tt.spl) > tt.eps {
			t.Fatalf("%v: overall SPL %v dB, want %v (eps %v)", tt.effort, got, tt.spl, tt.eps)
		}
	}
}

func TestSpeechSpectraTable(t *testing.T) {
	table := SpeechSpectra()
	if len(table) != Count {
		t.Fatalf("got %d rows, want %d", len(table), Count)
	}
	for _, e := range []VocalEffort{EffortNormal, EffortRaised, EffortLoud, EffortShout} {
		col, err := SpeechSpectrum(e)
		if err != nil {
			t.Fatalf("%v: %v", e, err)
		}
		for i := range col {
			if table[i][e] != col[i] {
				t.Fatalf("%v band %d: table %v, column %v", e, i+1, table[i][e], col[i])
			}
		}
	}
}

func TestParseVocalEffort(t *testing.T) {
	tests := []struct {
		name string
		want VocalEffort
	}{
		{"normal", EffortNormal},
		{"Raised", EffortRaised},
		{"LOUD", EffortLoud},
		{"shout", EffortShout},
	}
	for _, tt := range tests {
		got, err := ParseVocalEffort(tt.name)
		if err != nil {
			t.Fatalf("%q: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%q: got %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseVocalEffort("whisper"); err == nil {
		t.Fatal("expected error for unknown effort name")
	}
	if _, err := SpeechSpectrum(VocalEffort(17)); err == nil {
		t.Fatal("expected error for out-of-range effort value")
	}
}

// Accessors hand out copies; mutating a returned slice must not leak into
// later lookups.
func TestAccessorIsolation(t *testing.T) {
	fc := CenterFrequencies()
	fc[0] = -1
	if got := CenterFrequencies()[0]; got != 160 {
		t.Fatalf("center frequency table mutated through returned slice: %v", got)
	}

	levels, _ := SpeechSpectrum(EffortNormal)
	levels[0] = -1
	again, _ := SpeechSpectrum(EffortNormal)
	if again[0] != 32.41 {
		t.Fatalf("speech spectrum table mutated through returned slice: %v", again[0])
	}
}
