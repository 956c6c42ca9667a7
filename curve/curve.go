package curve

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

// tolerance used when comparing two curves for equality. Curves are
// the product of floating point pipelines, so bit equality is useless.
const equalTolerance = 1e-9

// Pair couples an abscissa with one or more ordinate values.
type Pair struct {
	X float64
	Y []float64
}

// Pt builds a Pair. Convenience for literals:
//
//	curve.New(curve.Pt(0.1, 1.0), curve.Pt(0.2, 2.0))            // single ordinate
//	curve.New(curve.Pt(0.1, 0.05, 0.3), curve.Pt(0.5, 0.2, 0.3)) // (mean, cov) pairs
func Pt(x float64, y ...float64) Pair {
	return Pair{X: x, Y: y}
}

// Curve is a discretized function: a sorted set of abscissa values,
// each carrying one or more ordinate values. Immutable once built,
// derived operations return new instances.
type Curve struct {
	xs []float64
	ys [][]float64
}

// New builds a curve from an unordered sequence of pairs. Pairs are
// sorted by abscissa; a duplicated abscissa keeps the last pair given.
// Building from zero pairs is valid and yields the empty curve, lookups
// on it fail with ErrEmptyCurve.
func New(pairs ...Pair) *Curve {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	c := &Curve{}

	for _, p := range sorted {
		y := make([]float64, len(p.Y))
		copy(y, p.Y)

		if n := len(c.xs); n > 0 && c.xs[n-1] == p.X {
			c.ys[n-1] = y

			continue
		}

		c.xs = append(c.xs, p.X)
		c.ys = append(c.ys, y)
	}

	return c
}

// Empty returns the empty curve sentinel. It compares equal to any
// other empty curve and propagates as "no data" through computations.
func Empty() *Curve {
	return New()
}

func (c *Curve) Len() int {
	return len(c.xs)
}

func (c *Curve) IsEmpty() bool {
	return len(c.xs) == 0
}

// IsMultiValue reports whether each abscissa carries more than one
// ordinate value.
func (c *Curve) IsMultiValue() bool {
	return len(c.ys) > 0 && len(c.ys[0]) > 1
}

// Abscissae returns the abscissa values in ascending order.
func (c *Curve) Abscissae() []float64 {
	xs := make([]float64, len(c.xs))
	copy(xs, c.xs)

	return xs
}

// Ordinates returns the requested ordinate component for every
// abscissa, in abscissa order.
func (c *Curve) Ordinates(component int) []float64 {
	ys := make([]float64, 0, len(c.ys))

	for _, y := range c.ys {
		if component >= len(y) {
			ys = append(ys, 0)

			continue
		}

		ys = append(ys, y[component])
	}

	return ys
}

// OrdinateFor returns the ordinate at the given abscissa, linearly
// interpolated between the two bracketing points. Fails with
// ErrOutOfDomain outside [xmin, xmax]: callers with a clamp policy
// must apply it before asking.
func (c *Curve) OrdinateFor(x float64, component int) (float64, error) {
	if c.IsEmpty() {
		return 0, ErrEmptyCurve
	}

	if component < 0 || component >= len(c.ys[0]) {
		return 0, fmt.Errorf("ordinate component %d: %w", component, ErrOutOfDomain)
	}

	if x < c.xs[0] || x > c.xs[len(c.xs)-1] {
		return 0, fmt.Errorf("abscissa %v outside [%v, %v]: %w",
			x, c.xs[0], c.xs[len(c.xs)-1], ErrOutOfDomain)
	}

	idx := sort.SearchFloat64s(c.xs, x)
	if idx < len(c.xs) && c.xs[idx] == x {
		return c.ys[idx][component], nil
	}

	x0, x1 := c.xs[idx-1], c.xs[idx]
	y0, y1 := c.ys[idx-1][component], c.ys[idx][component]

	return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
}

// AbscissaFor performs the inverse lookup on the first ordinate
// component. The ordinates must be strictly monotonic, otherwise the
// function cannot be inverted and the lookup fails with
// ErrNotInvertible. The same error is returned when y falls outside
// the observed ordinate range.
func (c *Curve) AbscissaFor(y float64) (float64, error) {
	if c.IsEmpty() {
		return 0, ErrEmptyCurve
	}

	ys := c.Ordinates(0)

	increasing, decreasing := true, true

	for i := 1; i < len(ys); i++ {
		if ys[i] <= ys[i-1] {
			increasing = false
		}

		if ys[i] >= ys[i-1] {
			decreasing = false
		}
	}

	if len(ys) > 1 && !increasing && !decreasing {
		return 0, fmt.Errorf("ordinates are not monotonic: %w", ErrNotInvertible)
	}

	inverse := make([]Pair, len(ys))
	for i, yv := range ys {
		inverse[i] = Pt(yv, c.xs[i])
	}

	x, err := New(inverse...).OrdinateFor(y, 0)
	if err != nil {
		return 0, fmt.Errorf("no abscissa for ordinate %v: %w", y, ErrNotInvertible)
	}

	return x, nil
}

// RescaleAbscissae returns a new curve with every abscissa multiplied
// by factor. Ordinates are unchanged.
func (c *Curve) RescaleAbscissae(factor float64) *Curve {
	pairs := make([]Pair, len(c.xs))

	for i, x := range c.xs {
		pairs[i] = Pair{X: x * factor, Y: c.ys[i]}
	}

	return New(pairs...)
}

// OrdinateOutOfBounds reports whether y falls outside the observed
// range of the first ordinate component.
func (c *Curve) OrdinateOutOfBounds(y float64) bool {
	if c.IsEmpty() {
		return true
	}

	ys := c.Ordinates(0)
	sort.Float64s(ys)

	return y < ys[0] || y > ys[len(ys)-1]
}

// Equal reports whether both curves hold numerically close abscissae
// and ordinates. Two empty curves are equal.
func (c *Curve) Equal(other *Curve) bool {
	if other == nil {
		return false
	}

	if c.IsEmpty() || other.IsEmpty() {
		return c.IsEmpty() && other.IsEmpty()
	}

	if len(c.xs) != len(other.xs) || len(c.ys[0]) != len(other.ys[0]) {
		return false
	}

	if !floats.EqualApprox(c.xs, other.xs, equalTolerance) {
		return false
	}

	for component := 0; component < len(c.ys[0]); component++ {
		if !floats.EqualApprox(c.Ordinates(component), other.Ordinates(component), equalTolerance) {
			return false
		}
	}

	return true
}

// ToMap serializes the curve to its generic dictionary form: the
// string form of each abscissa mapped to its ordinate values.
func (c *Curve) ToMap() map[string][]float64 {
	m := make(map[string][]float64, len(c.xs))

	for i, x := range c.xs {
		y := make([]float64, len(c.ys[i]))
		copy(y, c.ys[i])

		m[strconv.FormatFloat(x, 'g', -1, 64)] = y
	}

	return m
}

// FromMap rebuilds a curve from its generic dictionary form. Keys can
// be unordered, anything parseable as a float is accepted.
func FromMap(values map[string][]float64) (*Curve, error) {
	pairs := make([]Pair, 0, len(values))

	for key, y := range values {
		x, err := cast.ToFloat64E(key)
		if err != nil {
			return nil, fmt.Errorf("abscissa key %q: %w", key, ErrBadData)
		}

		pairs = append(pairs, Pair{X: x, Y: y})
	}

	return New(pairs...), nil
}

// ToJSON serializes the curve's dictionary form.
func (c *Curve) ToJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}

// FromJSON rebuilds a curve from its serialized dictionary form.
func FromJSON(d []byte) (*Curve, error) {
	var m map[string][]float64

	if err := json.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadData)
	}

	return FromMap(m)
}

// Fingerprint returns a deterministic identity string over the
// curve's points, usable as a memoization key.
func (c *Curve) Fingerprint() string {
	var sb strings.Builder

	for i, x := range c.xs {
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))

		for _, y := range c.ys[i] {
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(y, 'g', -1, 64))
		}

		sb.WriteByte(';')
	}

	return sb.String()
}

func (c *Curve) String() string {
	return fmt.Sprintf("X Values: %v\nY Values: %v", c.xs, c.ys)
}
