package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVulnerabilityAccessors(t *testing.T) {
	vf := NewVulnerability(Pt(0.5, 0.2, 0.3), Pt(0.1, 0.05, 0.3))

	assert.Equal(t, []float64{0.1, 0.5}, vf.IMLs())
	assert.Equal(t, []float64{0.05, 0.2}, vf.MeanLossRatios())
	assert.Equal(t, []float64{0.3, 0.3}, vf.CoVs())

	points := vf.Points()
	require.Len(t, points, 2)
	assert.Equal(t, VulnerabilityPoint{IML: 0.1, Mean: 0.05, CoV: 0.3}, points[0])
	assert.Equal(t, VulnerabilityPoint{IML: 0.5, Mean: 0.2, CoV: 0.3}, points[1])
}

func TestEmptyVulnerability(t *testing.T) {
	vf := EmptyVulnerability()

	assert.True(t, vf.IsEmpty())
	assert.Empty(t, vf.MeanLossRatios())
	assert.True(t, vf.Curve.Equal(EmptyVulnerability().Curve))
}

func TestVulnerabilityFromMap(t *testing.T) {
	vf, err := VulnerabilityFromMap(map[string][]float64{
		"0.1": {0.05, 0.3},
		"0.5": {0.2, 0.3},
	})
	require.Nil(t, err)

	assert.Equal(t, []float64{0.1, 0.5}, vf.IMLs())
	assert.Equal(t, []float64{0.05, 0.2}, vf.MeanLossRatios())

	_, err = VulnerabilityFromMap(map[string][]float64{"bad": {0.05, 0.3}})
	assert.ErrorIs(t, err, ErrBadData)
}
