package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(-3, 3, 0.2)
	if len(r) != 30 {
		t.Fatalf("len = %d, want 30", len(r))
	}
	if r[0] != -3 {
		t.Fatalf("r[0] = %v, want -3", r[0])
	}
	if r[15] != 0 {
		t.Fatalf("r[15] = %v, want 0", r[15])
	}
	if math.Abs(r[29]-2.8) > 1e-12 {
		t.Fatalf("r[29] = %v, want 2.8", r[29])
	}
}

func TestRampEmpty(t *testing.T) {
	if r := Ramp(1, 0, 0.5); r != nil {
		t.Fatalf("Ramp(1, 0, 0.5) = %v, want nil", r)
	}
	if r := Ramp(0, 1, 0); r != nil {
		t.Fatalf("Ramp(0, 1, 0) = %v, want nil", r)
	}
}

func TestCoherentSine(t *testing.T) {
	s := CoherentSine(4, 1.0, 64)
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	// A quarter of one cycle is 4 samples.
	if math.Abs(s[4]-1) > 1e-12 {
		t.Fatalf("s[4] = %v, want 1", s[4])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestTileCopies(t *testing.T) {
	row := []float64{1, 2}
	m := Tile(row, 3)
	if len(m) != 3 {
		t.Fatalf("rows = %d, want 3", len(m))
	}
	m[1][0] = 9
	if row[0] != 1 || m[0][0] != 1 || m[2][0] != 1 {
		t.Fatal("Tile rows share storage")
	}
}
