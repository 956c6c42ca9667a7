package risk

import (
	"fmt"
	"math"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quakelabs/riskcomponents/curve"
)

// StepsPerInterval is the default resolution of the loss ratio
// discretization: each interval between two consecutive mean loss
// ratios is subdivided into this many equal steps.
const StepsPerInterval = 5

// probabilities below this threshold are floating point noise from
// the lognormal tails and must not survive as spurious exceedance.
const minProbability = 1e-5

// Classical computes loss ratio curves from a vulnerability function
// and a hazard curve under a lognormal damage dispersion model.
//
// The loss ratio discretization and the exceedance matrix depend only
// on the vulnerability function, so both are memoized per function
// fingerprint. Recomputing them redundantly on another worker is
// harmless, the memo is purely a performance optimization.
type Classical struct {
	logger l.Wrapper
	steps  int
	memo   *cache.Cache
}

// NewClassical builds a classical engine with the default
// discretization resolution.
func NewClassical(logger l.Wrapper) *Classical {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Classical{
		logger: logger.WithFields(l.StringField(l.ClsKey, "classicalEngine")),
		steps:  StepsPerInterval,
		memo:   cache.New(cache.NoExpiration, 0),
	}
}

// SplitLossRatios subdivides each interval between consecutive loss
// ratios into stepsPerInterval equal steps:
//
//	SplitLossRatios([]float64{1, 2}, 2) -> [1, 1.5, 2]
//	SplitLossRatios([]float64{1, 2}, 3) -> [1, 1.33, 1.66, 2]
func SplitLossRatios(lossRatios []float64, stepsPerInterval int) []float64 {
	var splitted []float64

	for i := 0; i < len(lossRatios)-1; i++ {
		if i == 0 {
			splitted = append(splitted, lossRatios[i])
		}

		offset := (lossRatios[i+1] - lossRatios[i]) / float64(stepsPerInterval)

		for j := 0; j < stepsPerInterval-1; j++ {
			splitted = append(splitted, lossRatios[i]+offset*float64(j+1))
		}

		splitted = append(splitted, lossRatios[i+1])
	}

	return splitted
}

// LossRatios returns the discretized loss ratios of the vulnerability
// function: its mean loss ratios with 0.0 prepended, split to the
// engine's resolution.
func (c *Classical) LossRatios(vf *curve.VulnerabilityFunction) []float64 {
	key := "loss_ratios:" + vf.Fingerprint()

	if v, ok := c.memo.Get(key); ok {
		// nolint:forcetypeassert
		return v.([]float64)
	}

	ratios := append([]float64{0.0}, vf.MeanLossRatios()...)
	splitted := SplitLossRatios(ratios, c.steps)

	c.memo.Set(key, splitted, cache.NoExpiration)

	return splitted
}

// LREM computes the loss ratio exceedance matrix: one row per
// discretized loss ratio (plus a final row fixed at ratio 1.0), one
// column per IML of the vulnerability function in ascending order.
// Each entry is the probability that the actual loss ratio exceeds
// the row's value, under a lognormal whose mean and cov come from the
// vulnerability function at the column's IML.
func (c *Classical) LREM(vf *curve.VulnerabilityFunction) [][]float64 {
	key := "lrem:" + vf.Fingerprint()

	if v, ok := c.memo.Get(key); ok {
		// nolint:forcetypeassert
		return v.([][]float64)
	}

	lossRatios := c.LossRatios(vf)

	lrem := make([][]float64, len(lossRatios)+1)
	for row := range lrem {
		lrem[row] = make([]float64, vf.Len())
	}

	for column, point := range vf.Points() {
		stddev := point.CoV * point.Mean
		variance := stddev * stddev

		mu := math.Log(point.Mean * point.Mean / math.Sqrt(variance+point.Mean*point.Mean))
		sigma := math.Sqrt(math.Log(variance/(point.Mean*point.Mean) + 1.0))

		dist := distuv.LogNormal{Mu: mu, Sigma: sigma}

		for row := range lrem {
			// the last row is fixed to ratio 1.0
			threshold := 1.0
			if row < len(lossRatios) {
				threshold = lossRatios[row]
			}

			lrem[row][column] = fixProbability(dist.Survival(threshold))
		}
	}

	c.memo.Set(key, lrem, cache.NoExpiration)

	return lrem
}

// fixProbability clamps NaN and near-zero tail values to exactly 0.0.
func fixProbability(prob float64) float64 {
	if math.IsNaN(prob) || prob < minProbability {
		return 0.0
	}

	return prob
}

// LREMPO scales each matrix column by the hazard curve's probability
// of occurrence at the column's IML, interpolated from the hazard
// curve.
func (c *Classical) LREMPO(vf *curve.VulnerabilityFunction, lrem [][]float64,
	hazardCurve *curve.Curve) ([][]float64, error) {
	lremPO := make([][]float64, len(lrem))
	for row := range lremPO {
		lremPO[row] = make([]float64, vf.Len())
	}

	for column, iml := range vf.IMLs() {
		probOcc, err := hazardCurve.OrdinateFor(iml, 0)
		if err != nil {
			return nil, fmt.Errorf("hazard curve at iml %v: %w", iml, err)
		}

		for row := range lremPO {
			lremPO[row][column] = lrem[row][column] * probOcc
		}
	}

	return lremPO, nil
}

// LossRatioCurve runs the full classical pipeline. An empty
// vulnerability function short-circuits to the empty curve.
func (c *Classical) LossRatioCurve(vf *curve.VulnerabilityFunction,
	hazardCurve *curve.Curve) (*curve.Curve, error) {
	if vf == nil || vf.IsEmpty() {
		return curve.Empty(), nil
	}

	lremPO, err := c.LREMPO(vf, c.LREM(vf), hazardCurve)
	if err != nil {
		return nil, err
	}

	lossRatios := c.LossRatios(vf)

	pairs := make([]curve.Pair, 0, len(lremPO)-1)

	for row := 0; row < len(lremPO)-1; row++ {
		probOcc := 0.0
		for column := range lremPO[row] {
			probOcc += lremPO[row][column]
		}

		pairs = append(pairs, curve.Pt(lossRatios[row], probOcc))
	}

	return curve.New(pairs...), nil
}

// Compute implements Engine.
func (c *Classical) Compute(vf *curve.VulnerabilityFunction, in Input) (*curve.Curve, error) {
	if vf == nil || vf.IsEmpty() {
		return curve.Empty(), nil
	}

	if in.HazardCurve == nil {
		return nil, fmt.Errorf("classical mode needs a hazard curve: %w", ErrInvalidInput)
	}

	return c.LossRatioCurve(vf, in.HazardCurve)
}

// LossCurve converts a loss ratio curve to an absolute loss curve by
// scaling every abscissa by the asset value. A zero asset value is a
// valid "no data" input and yields the empty curve, not an error.
func LossCurve(lossRatioCurve *curve.Curve, assetValue float64) *curve.Curve {
	if assetValue == 0 {
		return curve.Empty()
	}

	return lossRatioCurve.RescaleAbscissae(assetValue)
}
