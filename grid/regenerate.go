package grid

import (
	"fmt"
	"math/rand"
)

// Regenerate redraws the whole board: every cell independently becomes a
// Wall with probability p, otherwise Empty. Start is then forced to the
// top-left corner and Goal to the bottom-right corner, overwriting any wall
// drawn there. Each call consumes fresh values from rng.
//
// Returns ErrBadProbability if p is outside [0,1]; the grid is left untouched.
// Complexity: O(W×H).
func (g *Grid) Regenerate(rng *rand.Rand, p float64) error {
	if p < 0 || p > 1 || p != p {
		return fmt.Errorf("%w: %v", ErrBadProbability, p)
	}
	for i := range g.cells {
		if rng.Float64() < p {
			g.cells[i] = Wall
		} else {
			g.cells[i] = Empty
		}
	}
	g.resetEndpoints()

	return nil
}

// Random builds a rows×cols grid and regenerates it once with rng and p.
func Random(rows, cols int, rng *rand.Rand, p float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = g.Regenerate(rng, p); err != nil {
		return nil, err
	}
	return g, nil
}
