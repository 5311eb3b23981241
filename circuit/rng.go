package circuit

import "math/rand"

// defaultSeed is used when no seed or RNG is configured.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
//
// math/rand.Rand is not goroutine-safe; a Session only draws from it while
// holding its commit guard.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
