package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSortsPairs(t *testing.T) {
	c := New(Pt(0.5, 1.0), Pt(0.1, 2.0), Pt(0.3, 3.0))

	assert.Equal(t, []float64{0.1, 0.3, 0.5}, c.Abscissae())
	assert.Equal(t, []float64{2.0, 3.0, 1.0}, c.Ordinates(0))
}

func TestNewDuplicateAbscissaKeepsLast(t *testing.T) {
	c := New(Pt(0.1, 1.0), Pt(0.1, 2.0))

	assert.Equal(t, 1, c.Len())

	y, err := c.OrdinateFor(0.1, 0)
	assert.Nil(t, err)
	assert.Equal(t, 2.0, y)
}

func TestOrdinateForOnKnownAbscissae(t *testing.T) {
	c := New(Pt(0.1, 1.0), Pt(0.2, 2.0), Pt(0.4, 4.0))

	for i, x := range c.Abscissae() {
		y, err := c.OrdinateFor(x, 0)
		assert.Nil(t, err)
		assert.InDelta(t, c.Ordinates(0)[i], y, 1e-12)
	}
}

func TestOrdinateForInterpolates(t *testing.T) {
	c := New(Pt(0.0, 0.0), Pt(1.0, 10.0))

	y, err := c.OrdinateFor(0.5, 0)
	assert.Nil(t, err)
	assert.InDelta(t, 5.0, y, 1e-12)

	y, err = c.OrdinateFor(0.25, 0)
	assert.Nil(t, err)
	assert.InDelta(t, 2.5, y, 1e-12)
}

func TestOrdinateForMultiValue(t *testing.T) {
	c := New(Pt(0.1, 0.05, 0.3), Pt(0.5, 0.2, 0.5))

	assert.True(t, c.IsMultiValue())

	cov, err := c.OrdinateFor(0.1, 1)
	assert.Nil(t, err)
	assert.Equal(t, 0.3, cov)

	cov, err = c.OrdinateFor(0.3, 1)
	assert.Nil(t, err)
	assert.InDelta(t, 0.4, cov, 1e-12)
}

func TestOrdinateForOutsideDomain(t *testing.T) {
	c := New(Pt(0.1, 1.0), Pt(0.5, 2.0))

	_, err := c.OrdinateFor(0.05, 0)
	assert.ErrorIs(t, err, ErrOutOfDomain)

	_, err = c.OrdinateFor(0.6, 0)
	assert.ErrorIs(t, err, ErrOutOfDomain)

	_, err = c.OrdinateFor(0.1, 3)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestOrdinateForOnEmptyCurve(t *testing.T) {
	_, err := Empty().OrdinateFor(0.1, 0)
	assert.ErrorIs(t, err, ErrEmptyCurve)
}

func TestAbscissaFor(t *testing.T) {
	c := New(Pt(1.0, 0.1), Pt(2.0, 0.2), Pt(3.0, 0.3))

	x, err := c.AbscissaFor(0.2)
	assert.Nil(t, err)
	assert.InDelta(t, 2.0, x, 1e-12)

	x, err = c.AbscissaFor(0.25)
	assert.Nil(t, err)
	assert.InDelta(t, 2.5, x, 1e-12)
}

func TestAbscissaForDecreasingOrdinates(t *testing.T) {
	c := New(Pt(1.0, 0.3), Pt(2.0, 0.2), Pt(3.0, 0.1))

	x, err := c.AbscissaFor(0.2)
	assert.Nil(t, err)
	assert.InDelta(t, 2.0, x, 1e-12)
}

func TestAbscissaForNonMonotonic(t *testing.T) {
	c := New(Pt(1.0, 0.1), Pt(2.0, 0.3), Pt(3.0, 0.2))

	_, err := c.AbscissaFor(0.2)
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestAbscissaForOutsideRange(t *testing.T) {
	c := New(Pt(1.0, 0.1), Pt(2.0, 0.2))

	_, err := c.AbscissaFor(0.5)
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestRescaleAbscissaeRoundTrip(t *testing.T) {
	c := New(Pt(0.1, 1.0), Pt(0.2, 2.0), Pt(0.4, 4.0))

	rescaled := c.RescaleAbscissae(3.0)
	assert.Equal(t, []float64{0.1 * 3.0, 0.2 * 3.0, 0.4 * 3.0}, rescaled.Abscissae())
	assert.Equal(t, c.Ordinates(0), rescaled.Ordinates(0))

	assert.True(t, rescaled.RescaleAbscissae(1.0/3.0).Equal(c))
}

func TestEqualWithinTolerance(t *testing.T) {
	a := New(Pt(0.1, 1.0), Pt(0.2, 2.0))
	b := New(Pt(0.1, 1.0+1e-12), Pt(0.2, 2.0))

	assert.True(t, a.Equal(b))
	assert.True(t, Empty().Equal(Empty()))
	assert.False(t, a.Equal(Empty()))
	assert.False(t, a.Equal(New(Pt(0.1, 1.0))))
	assert.False(t, a.Equal(New(Pt(0.1, 1.0), Pt(0.2, 3.0))))
	assert.False(t, a.Equal(nil))
}

func TestMapRoundTrip(t *testing.T) {
	c := New(Pt(0.1, 0.05, 0.3), Pt(0.5, 0.2, 0.5))

	back, err := FromMap(c.ToMap())
	require.Nil(t, err)

	assert.True(t, c.Equal(back))
}

func TestFromMapBadKey(t *testing.T) {
	_, err := FromMap(map[string][]float64{"not a number": {1.0}})
	assert.ErrorIs(t, err, ErrBadData)
}

func TestJSONRoundTrip(t *testing.T) {
	c := New(Pt(0.1, 1.0), Pt(0.2, 2.0), Pt(0.4, 4.0))

	d, err := c.ToJSON()
	require.Nil(t, err)

	back, err := FromJSON(d)
	require.Nil(t, err)

	assert.True(t, c.Equal(back))
}

func TestFromJSONBadData(t *testing.T) {
	_, err := FromJSON([]byte("not json"))
	assert.ErrorIs(t, err, ErrBadData)
}

func TestOrdinateOutOfBounds(t *testing.T) {
	c := New(Pt(0.1, 0.3), Pt(0.2, 0.1), Pt(0.3, 0.2))

	assert.False(t, c.OrdinateOutOfBounds(0.15))
	assert.True(t, c.OrdinateOutOfBounds(0.05))
	assert.True(t, c.OrdinateOutOfBounds(0.35))
	assert.True(t, Empty().OrdinateOutOfBounds(0.0))
}

func TestFingerprintIsStable(t *testing.T) {
	a := New(Pt(0.1, 1.0), Pt(0.2, 2.0))
	b := New(Pt(0.2, 2.0), Pt(0.1, 1.0))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), New(Pt(0.1, 1.0)).Fingerprint())
}
