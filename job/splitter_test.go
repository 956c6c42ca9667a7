package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakelabs/riskcomponents/geo"
)

func TestSplitEmptyInput(t *testing.T) {
	blocks, err := Split(nil, DefaultBlockSize, nil)
	require.Nil(t, err)
	assert.Empty(t, blocks)
}

func TestSplitInvalidBlockSize(t *testing.T) {
	_, err := Split(siteFixture(), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidBlockSize)

	_, err = Split(siteFixture(), -1, nil)
	assert.ErrorIs(t, err, ErrInvalidBlockSize)
}

func TestSplitBlockSizes(t *testing.T) {
	sites := make([]geo.Site, 0, 7)

	for i := 0; i < 7; i++ {
		sites = append(sites, geo.NewSite(9.0+float64(i)*0.01, 45.0))
	}

	blocks, err := Split(sites, 3, nil)
	require.Nil(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, 3, blocks[0].Len())
	assert.Equal(t, 3, blocks[1].Len())
	assert.Equal(t, 1, blocks[2].Len())

	// order of the sites is preserved across blocks
	assert.True(t, sites[0].Equal(blocks[0].Sites()[0]))
	assert.True(t, sites[6].Equal(blocks[2].Sites()[0]))
}

func TestSplitSingleBlock(t *testing.T) {
	blocks, err := Split(siteFixture(), DefaultBlockSize, nil)
	require.Nil(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, 3, blocks[0].Len())
}

func TestSplitWithRegionConstraint(t *testing.T) {
	region := geo.FromCoordinates([][2]float64{
		{9.0, 45.0},
		{9.2, 45.0},
		{9.2, 45.2},
		{9.0, 45.2},
	})

	sites := []geo.Site{
		geo.NewSite(9.1, 45.1),
		geo.NewSite(10.0, 46.0),
		geo.NewSite(9.15, 45.15),
	}

	blocks, err := Split(sites, DefaultBlockSize, geo.Constrain(region))
	require.Nil(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, 2, blocks[0].Len())
}
