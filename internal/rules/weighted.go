package rules

import (
	"math/rand"

	"github.com/arcadeworks/steroids/internal/entity"
)

// sizeWeight pairs an asteroid size with its relative spawn weight.
type sizeWeight struct {
	size   entity.Size
	weight int
}

// chooseSize draws a size at random with probability proportional to
// the weights: a uniform draw on [0, sum) scanned against cumulative
// weights. Zero-weight entries are never selected. All weights zero is
// a programming error (levels are validated at load time).
func chooseSize(rng *rand.Rand, choices []sizeWeight) entity.Size {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	if total <= 0 {
		panic("rules: no positive spawn weights")
	}

	r := rng.Float64() * float64(total)
	upto := 0.0
	for _, c := range choices {
		if upto+float64(c.weight) > r {
			return c.size
		}
		upto += float64(c.weight)
	}

	// Unreachable: r < total and the cumulative scan covers [0, total).
	panic("rules: weighted choice fell through")
}
