package engine_test

import (
	"testing"

	"github.com/GiacomoGaraccione/gp-belotta/internal/engine/sim"
)

func TestSelfPlayHandsManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		if err := sim.RunSelfPlayHands(seed, 10, 2000); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	}
}

func FuzzSelfPlayHands(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(20250211))
	f.Fuzz(func(t *testing.T, seed int64) {
		if err := sim.RunSelfPlayHands(seed, 3, 2000); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	})
}
