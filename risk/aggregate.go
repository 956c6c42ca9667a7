package risk

import (
	"gonum.org/v1/gonum/floats"

	"github.com/quakelabs/riskcomponents/curve"
)

// AggregateHistogram accumulates loss ratio samples from multiple
// (vulnerability function, ground motion field) pairs into a single
// histogram for portfolio level aggregation. Its bin range only ever
// widens as data is appended, never shrinks.
type AggregateHistogram struct {
	min float64
	max float64

	distribution []float64
	numberOfBins int
}

// NewAggregateHistogram builds an empty aggregate over the given
// number of bin edges.
func NewAggregateHistogram(numberOfBins int) *AggregateHistogram {
	return &AggregateHistogram{numberOfBins: numberOfBins}
}

// Bins returns the current equally spaced bin edges over [min, max].
func (h *AggregateHistogram) Bins() []float64 {
	return floats.Span(make([]float64, h.numberOfBins), h.min, h.max)
}

// Append adds the loss ratios of one vulnerability function and
// ground motion field pair, widening the bin range as needed.
func (h *AggregateHistogram) Append(vf *curve.VulnerabilityFunction, gmf *GroundMotionField) {
	if vf == nil || vf.IsEmpty() {
		return
	}

	h.append(LossRatios(vf, gmf), LossRatiosRange(vf, h.numberOfBins))
}

func (h *AggregateHistogram) append(distribution, bins []float64) {
	h.distribution = append(h.distribution, distribution...)

	if len(bins) == 0 {
		return
	}

	if bins[0] < h.min {
		h.min = bins[0]
	}

	if bins[len(bins)-1] > h.max {
		h.max = bins[len(bins)-1]
	}
}

// Compute counts the accumulated samples per bin.
func (h *AggregateHistogram) Compute() []float64 {
	edges := h.Bins()
	counts := make([]float64, len(edges)-1)

	for _, ratio := range h.distribution {
		if ratio < edges[0] || ratio > edges[len(edges)-1] {
			continue
		}

		idx := len(counts) - 1

		for i := 0; i < len(counts); i++ {
			if ratio < edges[i+1] {
				idx = i

				break
			}
		}

		counts[idx]++
	}

	return counts
}

// LossRatioCurveFromAggregate converts an aggregate histogram into a
// loss ratio curve using the portfolio's exposure time statistics.
func LossRatioCurveFromAggregate(h *AggregateHistogram, tses, timeSpan float64) (*curve.Curve, error) {
	counts := h.Compute()

	// aggregate counts are plain per-bin counts, cumulate high to low
	for i := len(counts) - 2; i >= 0; i-- {
		counts[i] += counts[i+1]
	}

	rates, err := RatesOfExceedance(counts, tses)
	if err != nil {
		return nil, err
	}

	return midpointCurve(h.Bins(), ProbsOfExceedance(rates, timeSpan)), nil
}
