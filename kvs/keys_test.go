package kvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobKey(t *testing.T) {
	assert.Equal(t, "JOB!17", JobKey("17"))
}

func TestProductKeyShape(t *testing.T) {
	key := ProductKey("job1", TokenLossCurve, "block1", "Site(9.15, 45.16)")

	assert.Equal(t, "job1!block1!Site(9.15,45.16)!loss_curve", key)
}

func TestSitesKey(t *testing.T) {
	assert.Equal(t, "j!b!!sites", SitesKey("j", "b"))
}

func TestVulnerabilityKey(t *testing.T) {
	assert.Equal(t, "j!!!vulnerability_curves", VulnerabilityKey("j"))
}

func TestRandomID(t *testing.T) {
	assert.Len(t, RandomID(DefaultRandomIDLength), DefaultRandomIDLength)
	assert.Len(t, RandomID(100), MaxRandomIDLength)
	assert.NotEqual(t, RandomID(MaxRandomIDLength), RandomID(MaxRandomIDLength))
}
