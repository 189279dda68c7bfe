package workload

import (
	"math"
	"math/rand/v2"
)

// generateZipf fills keys with draws from a Zipfian distribution over
// [0, keySpace). Theta controls the skew; higher theta concentrates more
// accesses on the lowest-numbered keys.
func generateZipf(rng *rand.Rand, keys []int, keySpace int, theta float64) {
	spread := keySpace + 1
	zeta2 := zeta(2, theta)
	zetaN := zeta(uint64(spread), theta)
	alpha := 1.0 / (1.0 - theta)
	eta := (1 - math.Pow(2.0/float64(spread), 1.0-theta)) / (1.0 - zeta2/zetaN)
	halfPowTheta := 1.0 + math.Pow(0.5, theta)

	for i := range keys {
		u := rng.Float64()
		uz := u * zetaN
		var key int
		switch {
		case uz < 1.0:
			key = 0
		case uz < halfPowTheta:
			key = 1
		default:
			key = int(float64(spread) * math.Pow(eta*u-eta+1.0, alpha))
		}
		if key >= keySpace {
			key = keySpace - 1
		}
		keys[i] = key
	}
}

func zeta(n uint64, theta float64) float64 {
	sum := 0.0
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}
