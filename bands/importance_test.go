package bands

import (
	"math"
	"testing"
)

func TestImportanceNameMatchesNumber(t *testing.T) {
	tests := []struct {
		name string
		want TestMaterial
	}{
		{"standard", AverageSpeech},
		{"nns", NonsenseSyllables},
		{"cid-22", CID22},
		{"nu6", NU6},
		{"drt", DRT},
		{"short", ShortPassages},
		{"spin", SPIN},
		{"cst", CST},
	}

	for _, tt := range tests {
		m, err := ParseTestMaterial(tt.name)
		if err != nil {
			t.Fatalf("%q: %v", tt.name, err)
		}
		if m != tt.want {
			t.Fatalf("%q: got material %d, want %d", tt.name, m, tt.want)
		}

		byName, err := SelectName(tt.name).Weights()
		if err != nil {
			t.Fatalf("%q: %v", tt.name, err)
		}
		byNumber, err := Importance(tt.want)
		if err != nil {
			t.Fatalf("material %d: %v", tt.want, err)
		}
		for i := range byName {
			if byName[i] != byNumber[i] {
				t.Fatalf("%q band %d: name lookup %v, number lookup %v",
					tt.name, i+1, byName[i], byNumber[i])
			}
		}
	}
}

// SPIN must resolve to material 7 per the standard's Table B.2 numbering.
func TestSPINIsMaterialSeven(t *testing.T) {
	m, err := ParseTestMaterial("SPIN")
	if err != nil {
		t.Fatal(err)
	}
	if m != TestMaterial(7) {
		t.Fatalf("got material %d, want 7", m)
	}
}

// The standard importance functions each distribute unit weight across the
// 18 bands. CST is exempt: its source table carries one extra band below
// and one above the 160 Hz..8 kHz range.
func TestImportanceSumsToOne(t *testing.T) {
	for m := AverageSpeech; m <= SPIN; m++ {
		weights, err := Importance(m)
		if err != nil {
			t.Fatalf("material %d: %v", m, err)
		}
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		if math.Abs(sum-1) > 1e-3 {
			t.Fatalf("material %d: weights sum to %v, want 1", m, sum)
		}
	}
}

func TestImportanceRejectsOutOfRange(t *testing.T) {
	for _, m := range []TestMaterial{0, -3, 9, 42} {
		if _, err := Importance(m); err == nil {
			t.Fatalf("material %d: expected error", m)
		}
	}
	if _, err := ParseTestMaterial("hint"); err == nil {
		t.Fatal("expected error for unknown material name")
	}
}

func TestSelectorDefaultIsAverageSpeech(t *testing.T) {
	var s Selector

	got, err := s.Weights()
	if err != nil {
		t.Fatal(err)
	}
	want, err := Importance(AverageSpeech)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("band %d: got %v, want %v", i+1, got[i], want[i])
		}
	}
}

func TestSelectorCustomWeights(t *testing.T) {
	custom := make([]float64, Count)
	custom[9] = 0.5
	custom[10] = 0.5

	got, err := SelectWeights(custom).Weights()
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] != custom[i] {
			t.Fatalf("band %d: got %v, want %v", i+1, got[i], custom[i])
		}
	}

	// Resolved weights are a copy, not an alias.
	got[9] = -1
	if custom[9] != 0.5 {
		t.Fatal("selector aliased the caller's weight slice")
	}

	if _, err := SelectWeights(make([]float64, 17)).Weights(); err == nil {
		t.Fatal("expected error for 17-element weights")
	}
}

func TestTestMaterialString(t *testing.T) {
	if got := SPIN.String(); got != "spin" {
		t.Fatalf("got %q, want %q", got, "spin")
	}
	if got := TestMaterial(11).String(); got != "TestMaterial(11)" {
		t.Fatalf("got %q", got)
	}
}
