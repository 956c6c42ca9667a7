package curve

// VulnerabilityFunction maps intensity measure levels (IMLs) to pairs
// of (mean loss ratio, coefficient of variation).
type VulnerabilityFunction struct {
	*Curve
}

// VulnerabilityPoint is one (iml, mean loss ratio, cov) triple.
type VulnerabilityPoint struct {
	IML  float64
	Mean float64
	CoV  float64
}

// NewVulnerability builds a vulnerability function from pairs whose
// ordinates are (mean loss ratio, cov).
func NewVulnerability(pairs ...Pair) *VulnerabilityFunction {
	return &VulnerabilityFunction{Curve: New(pairs...)}
}

// EmptyVulnerability returns the "no data" sentinel. Downstream
// computations turn it into the empty loss curve, never an error.
func EmptyVulnerability() *VulnerabilityFunction {
	return NewVulnerability()
}

// VulnerabilityFromMap rebuilds a vulnerability function from the
// generic dictionary form, keyed by the string form of each IML.
func VulnerabilityFromMap(values map[string][]float64) (*VulnerabilityFunction, error) {
	c, err := FromMap(values)
	if err != nil {
		return nil, err
	}

	return &VulnerabilityFunction{Curve: c}, nil
}

// IMLs returns the intensity measure levels in ascending order.
func (vf *VulnerabilityFunction) IMLs() []float64 {
	return vf.Abscissae()
}

// MeanLossRatios returns the mean loss ratio at each IML.
func (vf *VulnerabilityFunction) MeanLossRatios() []float64 {
	return vf.Ordinates(0)
}

// CoVs returns the coefficient of variation at each IML.
func (vf *VulnerabilityFunction) CoVs() []float64 {
	return vf.Ordinates(1)
}

// Points returns the (iml, mean, cov) triples in ascending IML order.
func (vf *VulnerabilityFunction) Points() []VulnerabilityPoint {
	imls := vf.IMLs()
	means := vf.MeanLossRatios()
	covs := vf.CoVs()

	points := make([]VulnerabilityPoint, len(imls))

	for i := range imls {
		points[i] = VulnerabilityPoint{IML: imls[i], Mean: means[i], CoV: covs[i]}
	}

	return points
}
