package risk

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"gonum.org/v1/gonum/floats"

	"github.com/quakelabs/riskcomponents/curve"
)

// DefaultNumberOfSamples is the default number of bin edges of the
// loss ratio exceedance histogram.
const DefaultNumberOfSamples = 25

// EventBased computes loss ratio curves from simulated ground motion
// fields over a stochastic event set.
type EventBased struct {
	logger  l.Wrapper
	samples int
}

// NewEventBased builds an event based engine with the default
// histogram resolution.
func NewEventBased(logger l.Wrapper) *EventBased {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &EventBased{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "eventBasedEngine")),
		samples: DefaultNumberOfSamples,
	}
}

// LossRatios interpolates the vulnerability function at every ground
// motion sample. Samples below the function's lowest IML produce a
// loss ratio of 0.0. Samples above the highest IML fall back to the
// highest IML value itself, not the highest loss ratio.
func LossRatios(vf *curve.VulnerabilityFunction, gmf *GroundMotionField) []float64 {
	if vf == nil || vf.IsEmpty() || gmf == nil || len(gmf.IMLs) == 0 {
		return nil
	}

	imls := vf.IMLs()
	lossRatios := make([]float64, 0, len(gmf.IMLs))

	for _, groundMotionValue := range gmf.IMLs {
		switch {
		case groundMotionValue < imls[0]:
			lossRatios = append(lossRatios, 0.0)
		case groundMotionValue > imls[len(imls)-1]:
			lossRatios = append(lossRatios, imls[len(imls)-1])
		default:
			ratio, _ := vf.OrdinateFor(groundMotionValue, 0)
			lossRatios = append(lossRatios, ratio)
		}
	}

	return lossRatios
}

// LossRatiosRange returns the equally spaced bin edges spanning from
// zero to the function's highest mean loss ratio.
func LossRatiosRange(vf *curve.VulnerabilityFunction, samples int) []float64 {
	means := vf.MeanLossRatios()

	return floats.Span(make([]float64, samples), 0.0, means[len(means)-1])
}

// CumulativeHistogram counts, for each bin, the loss ratio samples
// falling in that bin or any higher one. Samples outside the bin
// range are not counted; the count of non-positive samples is
// subtracted from the first bin so zero and invalid ratios do not
// register as exceedance.
func CumulativeHistogram(lossRatios, binEdges []float64) []float64 {
	counts := make([]float64, len(binEdges)-1)

	for _, ratio := range lossRatios {
		if ratio < binEdges[0] || ratio > binEdges[len(binEdges)-1] {
			continue
		}

		idx := len(counts) - 1

		for i := 0; i < len(counts); i++ {
			if ratio < binEdges[i+1] {
				idx = i

				break
			}
		}

		counts[idx]++
	}

	// suffix sums: entry i counts samples at or above edge i
	for i := len(counts) - 2; i >= 0; i-- {
		counts[i] += counts[i+1]
	}

	invalid := 0.0

	for _, ratio := range lossRatios {
		if ratio <= 0.0 {
			invalid++
		}
	}

	if len(counts) > 0 {
		counts[0] -= invalid
	}

	return counts
}

// RatesOfExceedance converts cumulative counts into annual rates by
// normalizing with the total simulated exposure time.
func RatesOfExceedance(cumulativeHistogram []float64, tses float64) ([]float64, error) {
	if tses <= 0 {
		return nil, fmt.Errorf("tses must be greater than zero: %w", ErrInvalidInput)
	}

	rates := make([]float64, len(cumulativeHistogram))

	for i, count := range cumulativeHistogram {
		rates[i] = count / tses
	}

	return rates, nil
}

// ProbsOfExceedance converts rates of exceedance into probabilities
// over the investigation time span, assuming Poissonian occurrence.
func ProbsOfExceedance(ratesOfExceedance []float64, timeSpan float64) []float64 {
	probs := make([]float64, len(ratesOfExceedance))

	for i, rate := range ratesOfExceedance {
		probs[i] = 1.0 - math.Exp(-rate*timeSpan)
	}

	return probs
}

// LossRatioCurve runs the full event based pipeline: loss ratios from
// the ground motion field, cumulative histogram, rates, probabilities,
// paired with the bin midpoints.
func (e *EventBased) LossRatioCurve(vf *curve.VulnerabilityFunction,
	gmf *GroundMotionField) (*curve.Curve, error) {
	if vf == nil || vf.IsEmpty() {
		return curve.Empty(), nil
	}

	lossRatios := LossRatios(vf, gmf)
	binEdges := LossRatiosRange(vf, e.samples)

	rates, err := RatesOfExceedance(CumulativeHistogram(lossRatios, binEdges), gmf.TSES)
	if err != nil {
		return nil, err
	}

	return midpointCurve(binEdges, ProbsOfExceedance(rates, gmf.TimeSpan)), nil
}

// Compute implements Engine.
func (e *EventBased) Compute(vf *curve.VulnerabilityFunction, in Input) (*curve.Curve, error) {
	if vf == nil || vf.IsEmpty() {
		return curve.Empty(), nil
	}

	if in.GroundMotionField == nil {
		return nil, fmt.Errorf("event based mode needs a ground motion field: %w", ErrInvalidInput)
	}

	return e.LossRatioCurve(vf, in.GroundMotionField)
}

// midpointCurve pairs each bin's midpoint loss ratio with its
// probability of exceedance.
func midpointCurve(binEdges, probsOfExceedance []float64) *curve.Curve {
	pairs := make([]curve.Pair, 0, len(binEdges)-1)

	for i := 0; i < len(binEdges)-1; i++ {
		mid := (binEdges[i] + binEdges[i+1]) / 2.0
		pairs = append(pairs, curve.Pt(mid, probsOfExceedance[i]))
	}

	return curve.New(pairs...)
}
