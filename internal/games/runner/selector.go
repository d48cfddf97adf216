package runner

import "math/rand"

// Select picks one candidate with probability proportional to its weight.
//
// Negative weights count as zero. When no weight is positive the first
// candidate is returned, and an empty candidate list yields the zero value.
// Candidates beyond len(weights) are never chosen.
func Select[T any](rng *rand.Rand, candidates []T, weights []float64) T {
	var zero T
	n := min(len(candidates), len(weights))
	if n == 0 {
		if len(candidates) > 0 {
			return candidates[0]
		}
		return zero
	}

	total := 0.0
	last := -1 // last candidate with a positive weight
	for i := 0; i < n; i++ {
		if weights[i] > 0 {
			total += weights[i]
			last = i
		}
	}
	if total <= 0 {
		return candidates[0]
	}

	draw := rng.Float64() * total
	for i := 0; i < n; i++ {
		w := weights[i]
		if w <= 0 {
			continue
		}
		if draw < w {
			return candidates[i]
		}
		draw -= w
	}

	// Floating point drift can leave a sliver past the final span
	return candidates[last]
}

// selectObstacle draws an obstacle definition by rarity.
func selectObstacle(rng *rand.Rand) ObstacleDef {
	weights := make([]float64, len(obstacleDefs))
	for i, d := range obstacleDefs {
		weights[i] = d.Rarity
	}
	return Select(rng, obstacleDefs, weights)
}

// selectPowerup draws a powerup definition by rarity.
func selectPowerup(rng *rand.Rand) PowerupDef {
	weights := make([]float64, len(powerupDefs))
	for i, d := range powerupDefs {
		weights[i] = d.Rarity
	}
	return Select(rng, powerupDefs, weights)
}
