package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Region owns an immutable polygon and a grid cell size. The polygon
// ring is held in the same integer-scaled coordinate space as Site,
// so containment tests and grid math line up exactly with quantized
// sites.
type Region struct {
	ring     orb.Ring
	cellSize int64

	grid *Grid
}

func newRegion(ring orb.Ring) *Region {
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return &Region{ring: ring}
}

// FromCoordinates builds a region from a ring of (longitude, latitude)
// pairs in degrees.
func FromCoordinates(coords [][2]float64) *Region {
	ring := make(orb.Ring, 0, len(coords))

	for _, c := range coords {
		site := NewSite(c[0], c[1])
		ring = append(ring, orb.Point{float64(site.lon), float64(site.lat)})
	}

	return newRegion(ring)
}

// FromCorners builds a rectangular region from its top left and
// bottom right corners.
func FromCorners(topLeft, bottomRight Site) *Region {
	return FromCoordinates([][2]float64{
		{topLeft.Longitude(), topLeft.Latitude()},
		{topLeft.Longitude(), bottomRight.Latitude()},
		{bottomRight.Longitude(), bottomRight.Latitude()},
		{bottomRight.Longitude(), topLeft.Latitude()},
	})
}

// FromWKT builds a region from the WKT text of a single polygon. Only
// the outer ring is used.
func FromWKT(text string) (*Region, error) {
	polygon, err := wkt.UnmarshalPolygon(text)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadPolygon)
	}

	if len(polygon) == 0 {
		return nil, fmt.Errorf("polygon has no outer ring: %w", ErrBadPolygon)
	}

	coords := make([][2]float64, 0, len(polygon[0]))
	for _, p := range polygon[0] {
		coords = append(coords, [2]float64{p.X(), p.Y()})
	}

	return FromCoordinates(coords), nil
}

// SetCellSize fixes the grid cell size in degrees. The grid is
// rebuilt on next access.
func (r *Region) SetCellSize(degrees float64) {
	r.cellSize = int64(math.Round(degrees * coordScale))
	r.grid = nil
}

// CellSize returns the grid cell size in degrees, zero if unset.
func (r *Region) CellSize() float64 {
	return float64(r.cellSize) / coordScale
}

func (r *Region) bound() orb.Bound {
	return r.ring.Bound()
}

// LowerLeftCorner returns the lower left corner of the bounding box.
func (r *Region) LowerLeftCorner() Site {
	b := r.bound()

	return scaledSite(int64(b.Min.X()), int64(b.Min.Y()))
}

// UpperRightCorner returns the upper right corner of the bounding box.
func (r *Region) UpperRightCorner() Site {
	b := r.bound()

	return scaledSite(int64(b.Max.X()), int64(b.Max.Y()))
}

// LowerRightCorner returns the lower right corner of the bounding box.
func (r *Region) LowerRightCorner() Site {
	b := r.bound()

	return scaledSite(int64(b.Max.X()), int64(b.Min.Y()))
}

// UpperLeftCorner returns the upper left corner of the bounding box.
func (r *Region) UpperLeftCorner() Site {
	b := r.bound()

	return scaledSite(int64(b.Min.X()), int64(b.Max.Y()))
}

// Contains reports whether the site lies inside the region polygon or
// touches its boundary.
func (r *Region) Contains(site Site) bool {
	return ringContains(r.ring, float64(site.lon), float64(site.lat))
}

// Grid returns the grid view over this region. It is built lazily and
// fails with ErrConfiguration while the cell size is unset or not
// positive.
func (r *Region) Grid() (*Grid, error) {
	if r.cellSize <= 0 {
		return nil, ErrConfiguration
	}

	if r.grid == nil {
		r.grid = newGrid(r, r.cellSize)
	}

	return r.grid, nil
}

// Sites enumerates the sites of every grid cell contained by (or
// touching) the region polygon.
func (r *Region) Sites() ([]Site, error) {
	grid, err := r.Grid()
	if err != nil {
		return nil, err
	}

	points := grid.Points()
	sites := make([]Site, 0, len(points))

	for _, p := range points {
		sites = append(sites, p.Site())
	}

	return sites, nil
}

// RegionConstraint makes a region usable as a site filter.
type RegionConstraint struct {
	*Region
}

// Constrain wraps a region as a constraint.
func Constrain(r *Region) RegionConstraint {
	return RegionConstraint{Region: r}
}

// Match reports whether the site is contained by the region polygon
// or touches its boundary.
func (rc RegionConstraint) Match(site Site) bool {
	return rc.Contains(site)
}

// ringContains is an even-odd ray cast with an explicit boundary
// test. Coordinates are integer-scaled, so the boundary test is exact
// for any region narrower than a few degrees per edge.
func ringContains(ring orb.Ring, x, y float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	for i := 0; i < n-1; i++ {
		if onSegment(ring[i], ring[i+1], x, y) {
			return true
		}
	}

	inside := false

	for i, j := 0, n-2; i < n-1; j, i = i, i+1 {
		xi, yi := ring[i].X(), ring[i].Y()
		xj, yj := ring[j].X(), ring[j].Y()

		if (yi > y) != (yj > y) {
			xCross := xi + (y-yi)*(xj-xi)/(yj-yi)
			if x < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

func onSegment(a, b orb.Point, x, y float64) bool {
	if x < math.Min(a.X(), b.X()) || x > math.Max(a.X(), b.X()) ||
		y < math.Min(a.Y(), b.Y()) || y > math.Max(a.Y(), b.Y()) {
		return false
	}

	cross := (b.X()-a.X())*(y-a.Y()) - (b.Y()-a.Y())*(x-a.X())

	return cross == 0
}
