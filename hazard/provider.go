package hazard

import (
	"context"

	"github.com/quakelabs/riskcomponents/curve"
	"github.com/quakelabs/riskcomponents/geo"
	"github.com/quakelabs/riskcomponents/risk"
)

// Config carries the opaque parameters of the external hazard engine.
type Config map[string]string

// Provider is the external physics engine that materializes hazard
// curves and ground motion fields. The risk core only consumes its
// output types; implementations live in the orchestration layer.
type Provider interface {
	ComputeHazardCurves(ctx context.Context, sites []geo.Site, cfg Config) ([]*curve.Curve, error)
	ComputeGroundMotionField(ctx context.Context, sites []geo.Site, seed int64,
		cfg Config) (*risk.GroundMotionField, error)
}
