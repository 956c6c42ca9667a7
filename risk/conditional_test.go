package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quakelabs/riskcomponents/curve"
)

func conditionalFixture() *curve.Curve {
	return curve.New(
		curve.Pt(0.1, 0.1),
		curve.Pt(0.2, 0.04),
		curve.Pt(0.3, 0.01),
	)
}

func TestConditionalLossOutsideProbabilityRange(t *testing.T) {
	c := conditionalFixture()

	assert.Equal(t, 0.0, ConditionalLoss(c, 0.2), "above the observed maximum")
	assert.Equal(t, 0.0, ConditionalLoss(c, 0.001), "below the observed minimum")
}

func TestConditionalLossInterpolates(t *testing.T) {
	c := conditionalFixture()

	// halfway between the 0.1 and 0.04 probabilities
	assert.InDelta(t, 0.15, ConditionalLoss(c, 0.07), 1e-12)

	// closer to the lower probability, closer to its loss
	assert.InDelta(t, 0.175, ConditionalLoss(c, 0.055), 1e-12)
}

func TestConditionalLossOnObservedProbability(t *testing.T) {
	c := conditionalFixture()

	assert.InDelta(t, 0.2, ConditionalLoss(c, 0.04), 1e-12)
	assert.InDelta(t, 0.3, ConditionalLoss(c, 0.01), 1e-12)
	assert.InDelta(t, 0.1, ConditionalLoss(c, 0.1), 1e-12)
}

func TestConditionalLossEmptyCurve(t *testing.T) {
	assert.Equal(t, 0.0, ConditionalLoss(curve.Empty(), 0.5))
	assert.Equal(t, 0.0, ConditionalLoss(nil, 0.5))
}
