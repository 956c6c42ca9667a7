package risk

import (
	"sort"

	"github.com/quakelabs/riskcomponents/curve"
)

// ConditionalLoss returns the loss (or loss ratio) corresponding to
// the given probability of exceedance on the curve. A probability
// outside the curve's observed range, above the maximum or below the
// minimum, yields 0.0 by policy, never an error.
//
// Between two observed probabilities the loss is the probability
// distance weighted mix of the bracketing abscissae: each neighbor's
// loss is weighted by the other's distance from the requested
// probability.
func ConditionalLoss(c *curve.Curve, probability float64) float64 {
	if c == nil || c.IsEmpty() {
		return 0.0
	}

	type point struct {
		prob float64
		loss float64
	}

	losses := c.Abscissae()
	probs := c.Ordinates(0)

	points := make([]point, len(losses))
	for i := range losses {
		points[i] = point{prob: probs[i], loss: losses[i]}
	}

	// descending probability
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].prob > points[j].prob
	})

	if probability > points[0].prob || probability < points[len(points)-1].prob {
		return 0.0
	}

	// the last index whose probability still exceeds the target
	upper := -1

	for i := range points {
		if points[i].prob > probability {
			upper = i
		}
	}

	if upper < 0 || upper == len(points)-1 {
		// the target matches the highest observed probability exactly
		return points[0].loss
	}

	lower := upper + 1

	x := (points[lower].prob - probability) * points[upper].loss
	y := (probability - points[upper].prob) * points[lower].loss

	return (x + y) / (points[lower].prob - points[upper].prob)
}
