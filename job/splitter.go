package job

import (
	"errors"

	"github.com/quakelabs/riskcomponents/geo"
)

// DefaultBlockSize is the number of sites handed to one worker when
// the job configuration does not say otherwise.
const DefaultBlockSize = 100

var ErrInvalidBlockSize = errors.New("invalid block size")

// Constraint filters the sites admitted into blocks.
// geo.RegionConstraint satisfies it.
type Constraint interface {
	Match(site geo.Site) bool
}

// Split partitions the sites into consecutive blocks of blockSize
// sites each, except possibly a shorter final block. A nil constraint
// admits every site; an empty input yields zero blocks. Every block
// gets a fresh unique id.
func Split(sites []geo.Site, blockSize int, constraint Constraint) ([]*Block, error) {
	if blockSize < 1 {
		return nil, ErrInvalidBlockSize
	}

	filtered := sites

	if constraint != nil {
		filtered = make([]geo.Site, 0, len(sites))

		for _, site := range sites {
			if constraint.Match(site) {
				filtered = append(filtered, site)
			}
		}
	}

	var blocks []*Block

	for len(filtered) > 0 {
		n := blockSize
		if n > len(filtered) {
			n = len(filtered)
		}

		blocks = append(blocks, NewBlock(filtered[:n]))
		filtered = filtered[n:]
	}

	return blocks, nil
}
