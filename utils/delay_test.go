package utils

import (
	"testing"
	"time"
)

func TestRandomDelayEqualBounds(t *testing.T) {
	// Equal bounds used to feed rand.Int63n a zero, which panics.
	RandomDelay(time.Millisecond, time.Millisecond)
}

func TestRandomDelayInvertedBounds(t *testing.T) {
	RandomDelay(time.Millisecond, 0)
}

func TestRandomDelayStaysWithinBounds(t *testing.T) {
	start := time.Now()
	RandomDelay(time.Millisecond, 5*time.Millisecond)
	elapsed := time.Since(start)

	if elapsed < time.Millisecond {
		t.Errorf("slept %v, want at least 1ms", elapsed)
	}
}
