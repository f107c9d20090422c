package utils

import (
	"math/rand"
	"time"
)

// RandomDelay pauses for a random duration in [min, max). Randomised
// pacing reads as a human browsing where a fixed interval reads as a bot.
// Equal (or inverted) bounds degrade to sleeping for min.
func RandomDelay(min, max time.Duration) {
	diff := max - min
	if diff <= 0 {
		time.Sleep(min)
		return
	}
	time.Sleep(min + time.Duration(rand.Int63n(int64(diff))))
}
