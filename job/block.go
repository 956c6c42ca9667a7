package job

import (
	"context"
	"strconv"

	"github.com/godruoyi/go-snowflake"

	"github.com/quakelabs/riskcomponents/geo"
	"github.com/quakelabs/riskcomponents/kvs"
)

const blockIDPrefix = "block"

// Block is an immutable, ordered collection of sites handed to one
// distributed worker. Its identity is the unique id assigned at
// creation and is independent of its contents.
type Block struct {
	id    string
	sites []geo.Site
}

// NewBlock builds a block over the given sites and assigns it a fresh
// unique id.
func NewBlock(sites []geo.Site) *Block {
	return &Block{
		id:    newBlockID(),
		sites: append([]geo.Site{}, sites...),
	}
}

func newBlockID() string {
	return blockIDPrefix + kvs.InternalIDSeparator + strconv.FormatUint(snowflake.ID(), 36)
}

func (b *Block) ID() string {
	return b.id
}

func (b *Block) Len() int {
	return len(b.sites)
}

// Sites returns the block's sites in creation order.
func (b *Block) Sites() []geo.Site {
	return append([]geo.Site{}, b.sites...)
}

// SameSites reports whether both blocks carry the same site list.
// Blocks with equal contents but different ids remain distinct
// entities; this is a content comparison, not identity.
func (b *Block) SameSites(other *Block) bool {
	if other == nil || len(b.sites) != len(other.sites) {
		return false
	}

	for i := range b.sites {
		if !b.sites[i].Equal(other.sites[i]) {
			return false
		}
	}

	return true
}

// ToKVS persists the block's site list keyed by its id.
func (b *Block) ToKVS(ctx context.Context, store kvs.Store) error {
	coords := make([][2]float64, 0, len(b.sites))

	for _, site := range b.sites {
		lon, lat := site.Coords()
		coords = append(coords, [2]float64{lon, lat})
	}

	return kvs.SetJSON(ctx, store, b.id, coords)
}

// BlockFromKVS reads back the block stored under the given id.
func BlockFromKVS(ctx context.Context, store kvs.Store, id string) (*Block, error) {
	var coords [][2]float64

	if err := kvs.GetJSON(ctx, store, id, &coords); err != nil {
		return nil, err
	}

	sites := make([]geo.Site, 0, len(coords))

	for _, c := range coords {
		sites = append(sites, geo.NewSite(c[0], c[1]))
	}

	return &Block{id: id, sites: sites}, nil
}
