// Package geo generates synthetic Euclidean TSP instances: uniformly random
// integer lattice points with duplicate rejection.
package geo

import (
	"fmt"
	"math/rand"
)

// BuildXY generates n distinct integer points (x, y) in [0, gridSize)^2
// using rejection sampling on collision, and returns their coordinates as
// parallel float64 slices (so they can be handed directly to
// tsp.NewGeoGraph). verbose controls progress logging as an explicit
// parameter rather than global state.
func BuildXY(n, gridSize int, rnd *rand.Rand, verbose bool) ([]float64, []float64, error) {
	if gridSize <= 0 {
		return nil, nil, fmt.Errorf("geo: gridsize must be positive, got %d", gridSize)
	}
	maxPoints := gridSize * gridSize
	if n > maxPoints {
		return nil, nil, fmt.Errorf("geo: cannot place %d distinct points on a %dx%d grid", n, gridSize, gridSize)
	}
	if verbose {
		fmt.Printf("Random %d point set, gridsize = %d\n", n, gridSize)
	}

	seen := make(map[[2]int]bool, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		var x, y int
		for {
			x = rnd.Intn(gridSize)
			y = rnd.Intn(gridSize)
			if !seen[[2]int{x, y}] {
				break
			}
		}
		seen[[2]int{x, y}] = true
		xs[i] = float64(x)
		ys[i] = float64(y)
	}
	return xs, ys, nil
}
