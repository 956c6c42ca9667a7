package risk

import "github.com/quakelabs/riskcomponents/curve"

// MidMeanProbs averages each pair of consecutive exceedance
// probabilities of a loss ratio curve.
func MidMeanProbs(lossRatioCurve *curve.Curve) []float64 {
	probs := lossRatioCurve.Ordinates(0)

	if len(probs) < 2 {
		return nil
	}

	mid := make([]float64, 0, len(probs)-1)

	for i := 0; i < len(probs)-1; i++ {
		mid = append(mid, (probs[i]+probs[i+1])/2.0)
	}

	return mid
}

// MidProbsOfOccurrence differences consecutive mid-curve exceedance
// probabilities into probabilities of occurrence.
func MidProbsOfOccurrence(midMeanProbs []float64) []float64 {
	if len(midMeanProbs) < 2 {
		return nil
	}

	probsOcc := make([]float64, 0, len(midMeanProbs)-1)

	for i := 0; i < len(midMeanProbs)-1; i++ {
		probsOcc = append(probsOcc, midMeanProbs[i]-midMeanProbs[i+1])
	}

	return probsOcc
}

// MeanLoss reduces a loss (ratio) curve to its mean value by
// weighting each loss with its mid-curve probability of occurrence.
func MeanLoss(lossRatioCurve *curve.Curve) float64 {
	probsOcc := MidProbsOfOccurrence(MidMeanProbs(lossRatioCurve))
	losses := lossRatioCurve.Abscissae()

	mean := 0.0

	for i := range probsOcc {
		mean += losses[i] * probsOcc[i]
	}

	return mean
}
