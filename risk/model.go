package risk

import (
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/quakelabs/riskcomponents/curve"
)

// CalculationMode selects the probabilistic approach used to turn
// hazard input into a loss ratio curve. It is fixed once at job setup
// and passed explicitly, never swapped mid-computation.
type CalculationMode string

const (
	ModeClassical  CalculationMode = "classical"
	ModeEventBased CalculationMode = "event_based"
)

// ParseCalculationMode maps a configuration token to a mode.
func ParseCalculationMode(s string) (CalculationMode, error) {
	switch CalculationMode(s) {
	case ModeClassical:
		return ModeClassical, nil
	case ModeEventBased:
		return ModeEventBased, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// GroundMotionField is one simulated realization of ground motion at
// a site, as produced by the external hazard engine.
type GroundMotionField struct {
	IMLs     []float64 `json:"IMLs"`
	TSES     float64   `json:"TSES"`
	TimeSpan float64   `json:"TimeSpan"`
}

// Input carries the hazard description for one site. The classical
// engine reads HazardCurve, the event based engine reads
// GroundMotionField; the unused field stays nil.
type Input struct {
	HazardCurve       *curve.Curve
	GroundMotionField *GroundMotionField
}

// Engine turns a vulnerability function and a hazard description into
// a loss ratio exceedance curve.
type Engine interface {
	Compute(vf *curve.VulnerabilityFunction, in Input) (*curve.Curve, error)
}

// EngineFor returns the engine implementing the given mode.
func EngineFor(mode CalculationMode, logger l.Wrapper) (Engine, error) {
	switch mode {
	case ModeClassical:
		return NewClassical(logger), nil
	case ModeEventBased:
		return NewEventBased(logger), nil
	}

	return nil, fmt.Errorf("%q: %w", mode, ErrUnknownMode)
}
