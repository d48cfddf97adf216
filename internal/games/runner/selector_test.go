package runner

import (
	"math"
	"math/rand"
	"testing"
)

func TestSelectFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	candidates := []string{"a", "b", "c"}
	weights := []float64{0.5, 0.3, 0.2}

	const draws = 100000
	counts := map[string]int{}
	for range draws {
		counts[Select(rng, candidates, weights)]++
	}

	for i, c := range candidates {
		got := float64(counts[c]) / draws
		if math.Abs(got-weights[i]) > 0.01 {
			t.Errorf("candidate %s: frequency %.4f, want %.2f±0.01", c, got, weights[i])
		}
	}
}

func TestSelectDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name       string
		candidates []string
		weights    []float64
		want       string
	}{
		{"all zero", []string{"first", "second"}, []float64{0, 0}, "first"},
		{"all negative", []string{"first", "second"}, []float64{-1, -2}, "first"},
		{"no weights", []string{"first"}, nil, "first"},
		{"empty", nil, nil, ""},
		{"single positive", []string{"x", "y", "z"}, []float64{0, 1, 0}, "y"},
		{"negative ignored", []string{"x", "y"}, []float64{-5, 2}, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 100 {
				if got := Select(rng, tt.candidates, tt.weights); got != tt.want {
					t.Fatalf("Select() = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestSelectObstacleCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[ObstacleType]bool{}
	for range 5000 {
		seen[selectObstacle(rng).Type] = true
	}
	for _, d := range Obstacles() {
		if !seen[d.Type] {
			t.Errorf("obstacle %s never selected", d.Type)
		}
	}
}

func TestSelectPowerupCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[PowerupType]bool{}
	for range 5000 {
		seen[selectPowerup(rng).Type] = true
	}
	for _, d := range Powerups() {
		if !seen[d.Type] {
			t.Errorf("powerup %s never selected", d.Type)
		}
	}
}
