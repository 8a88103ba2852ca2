package random

import "testing"

// Reference output of mt19937ar.c for init_by_array({0x123, 0x234, 0x345, 0x456}).
func TestSeedArray_ReferenceVector(t *testing.T) {
	mt := &MT19937{}
	mt.SeedArray([]uint32{0x123, 0x234, 0x345, 0x456})
	want := []uint32{1067595299, 955945823, 477289528, 4107218783, 4228976476}
	for i, w := range want {
		if got := mt.Uint32(); got != w {
			t.Fatalf("output %d: got %d, want %d", i, got, w)
		}
	}
}

// Reference output of init_genrand(5489), the canonical default seed.
func TestSeedScalar_ReferenceVector(t *testing.T) {
	mt := &MT19937{}
	mt.seedScalar(5489)
	if got := mt.Uint32(); got != 3499211612 {
		t.Fatalf("got %d, want 3499211612", got)
	}
}

// random.seed(42); [random.random() for _ in range(3)]
func TestFloat64_MatchesPython(t *testing.T) {
	mt := New(42)
	want := []float64{0.6394267984578837, 0.025010755222666936, 0.27502931836911926}
	for i, w := range want {
		if got := mt.Float64(); got != w {
			t.Fatalf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

func TestSeed_NegativeMatchesAbsolute(t *testing.T) {
	a, b := New(42), New(-42)
	for i := 0; i < 10; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestSeed_Resets(t *testing.T) {
	mt := New(7)
	first := mt.Uint32()
	mt.Uint32()
	mt.Seed(7)
	if got := mt.Uint32(); got != first {
		t.Fatalf("reseed: got %d, want %d", got, first)
	}
}

func TestSeed_WideSeedsDiffer(t *testing.T) {
	if New(1).Uint32() == New(1|1<<32).Uint32() {
		t.Error("high seed word ignored")
	}
}

func TestFloat64_Range(t *testing.T) {
	mt := New(1)
	for i := 0; i < 10000; i++ {
		v := mt.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestIntN_Range(t *testing.T) {
	mt := New(3)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := mt.IntN(4)
		if v < 0 || v >= 4 {
			t.Fatalf("out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 values, saw %v", seen)
	}
	if v := mt.IntN(1); v != 0 {
		t.Errorf("IntN(1): got %d", v)
	}
}

func TestIntN_UsesBitLengthBits(t *testing.T) {
	// bound 4 has bit length 3, so each attempt consumes the top 3 bits
	// of one output and values 4..7 are rejected.
	a, b := New(42), New(42)
	got := a.IntN(4)
	for {
		r := int(b.Uint32() >> 29)
		if r < 4 {
			if r != got {
				t.Fatalf("got %d, want %d", got, r)
			}
			break
		}
	}
	if a.Uint32() != b.Uint32() {
		t.Error("streams diverged after IntN")
	}
}

func TestIntN_PanicsOnInvalidBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(1).IntN(0)
}

func TestBits(t *testing.T) {
	a, b := New(9), New(9)
	if got, want := a.Bits(8), b.Uint32()>>24; got != want {
		t.Errorf("Bits(8): got %d, want %d", got, want)
	}
	if got, want := a.Bits(32), b.Uint32(); got != want {
		t.Errorf("Bits(32): got %d, want %d", got, want)
	}
	if a.Bits(0) != 0 {
		t.Error("Bits(0) should be 0")
	}
}
