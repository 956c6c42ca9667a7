package kvs

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// KeySeparator joins the fields of a composite cache key.
	KeySeparator = "!"

	// InternalIDSeparator joins the parts of prefixed identifiers.
	InternalIDSeparator = ":"

	DefaultRandomIDLength = 8
	MaxRandomIDLength     = 36
)

// Product type tokens. Every stored artifact is addressed by
// (job id, block id, site identity, product token).
const (
	TokenSites                = "sites"
	TokenHazardCurve          = "hazard_curve"
	TokenGroundMotionField    = "gmf"
	TokenExposure             = "exposure"
	TokenVulnerabilityCurves  = "vulnerability_curves"
	TokenLossRatioCurve       = "loss_ratio_curve"
	TokenLossCurve            = "loss_curve"
	TokenConditionalLossCurve = "conditional_loss"
)

// JobKey returns the key addressing a job record.
func JobKey(jobID string) string {
	return generateKey("JOB", jobID)
}

// SitesKey returns the key addressing the site list of a block.
func SitesKey(jobID, blockID string) string {
	return ProductKey(jobID, TokenSites, blockID, "")
}

// VulnerabilityKey returns the key addressing the vulnerability
// curves of a job.
func VulnerabilityKey(jobID string) string {
	return ProductKey(jobID, TokenVulnerabilityCurves, "", "")
}

// ProductKey builds the composite key for one stored artifact. The
// key always carries four fields: job, block, site identity, product
// token, in this order. Spaces are stripped from the site and product
// fields so a formatted coordinate pair stays a single field.
func ProductKey(jobID, product, blockID, site string) string {
	return generateKey(jobID, blockID, stripSpaces(site), stripSpaces(product))
}

// RandomID returns a short random identifier, a truncated uuid4.
// Truncation trades collision resistance for key brevity; callers
// needing uniqueness guarantees pass MaxRandomIDLength.
func RandomID(length int) string {
	if length > MaxRandomIDLength {
		length = MaxRandomIDLength
	}

	id := uuid.NewString()
	if length < len(id) {
		id = id[:length]
	}

	return id
}

func generateKey(fields ...string) string {
	return strings.Join(fields, KeySeparator)
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
