package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakelabs/riskcomponents/curve"
)

func TestAggregateHistogramBoundsOnlyWiden(t *testing.T) {
	h := NewAggregateHistogram(DefaultNumberOfSamples)

	wide := curve.NewVulnerability(
		curve.Pt(0.1, 0.1, 0.3),
		curve.Pt(0.5, 0.4, 0.3),
	)

	h.Append(wide, &GroundMotionField{IMLs: []float64{0.2, 0.3}, TSES: 50, TimeSpan: 1})

	bins := h.Bins()
	require.Len(t, bins, DefaultNumberOfSamples)
	assert.Equal(t, 0.0, bins[0])
	assert.InDelta(t, 0.4, bins[len(bins)-1], 1e-12)

	// narrower data must not shrink the range
	h.Append(vulnerabilityFixture(), &GroundMotionField{IMLs: []float64{0.2}, TSES: 50, TimeSpan: 1})

	bins = h.Bins()
	assert.InDelta(t, 0.4, bins[len(bins)-1], 1e-12)
}

func TestAggregateHistogramCompute(t *testing.T) {
	h := NewAggregateHistogram(DefaultNumberOfSamples)

	h.Append(vulnerabilityFixture(), &GroundMotionField{IMLs: []float64{0.2, 0.3, 0.4}, TSES: 50, TimeSpan: 1})

	counts := h.Compute()
	require.Len(t, counts, DefaultNumberOfSamples-1)

	total := 0.0
	for _, c := range counts {
		total += c
	}

	assert.Equal(t, 3.0, total)
}

func TestAggregateHistogramIgnoresEmptyFunctions(t *testing.T) {
	h := NewAggregateHistogram(DefaultNumberOfSamples)

	h.Append(curve.EmptyVulnerability(), groundMotionFixture())
	h.Append(nil, groundMotionFixture())

	assert.Empty(t, h.distribution)
}

func TestLossRatioCurveFromAggregate(t *testing.T) {
	h := NewAggregateHistogram(DefaultNumberOfSamples)

	h.Append(vulnerabilityFixture(), &GroundMotionField{IMLs: []float64{0.2, 0.3, 0.4}, TSES: 50, TimeSpan: 1})

	aggregate, err := LossRatioCurveFromAggregate(h, 50, 1)
	require.Nil(t, err)
	require.Equal(t, DefaultNumberOfSamples-1, aggregate.Len())

	ordinates := aggregate.Ordinates(0)

	assert.Greater(t, ordinates[0], 0.0)

	for i := 1; i < len(ordinates); i++ {
		assert.LessOrEqual(t, ordinates[i], ordinates[i-1])
	}

	_, err = LossRatioCurveFromAggregate(h, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
