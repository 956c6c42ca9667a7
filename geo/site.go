package geo

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
)

// CoordPrecision is the number of decimal digits coordinates are
// quantized to. Coordinates are held as integer multiples of
// 1e-CoordPrecision degrees so that identity, grid math and boundary
// tests never depend on floating point drift.
const CoordPrecision = 7

// DefaultHashPrecision is the geohash length of a Site's canonical
// identity. Sites within this precision are the same point for
// map-key purposes.
const DefaultHashPrecision = 12

const coordScale = 1e7

// Site is a geographic coordinate pair, quantized to CoordPrecision
// decimal digits. It is a value type and usable directly as a map
// key; its canonical cross-process identity is Hash.
type Site struct {
	lon int64
	lat int64
}

// NewSite builds a site from longitude and latitude in degrees.
func NewSite(longitude, latitude float64) Site {
	return Site{
		lon: int64(math.Round(longitude * coordScale)),
		lat: int64(math.Round(latitude * coordScale)),
	}
}

func scaledSite(lon, lat int64) Site {
	return Site{lon: lon, lat: lat}
}

// Longitude returns the longitude in degrees.
func (s Site) Longitude() float64 {
	return float64(s.lon) / coordScale
}

// Latitude returns the latitude in degrees.
func (s Site) Latitude() float64 {
	return float64(s.lat) / coordScale
}

// Coords returns (longitude, latitude) in degrees.
func (s Site) Coords() (longitude, latitude float64) {
	return s.Longitude(), s.Latitude()
}

// Hash returns the canonical identity string of this site: its
// geohash at DefaultHashPrecision. The encoding is deterministic and
// platform independent, so the value is stable across process
// boundaries and serialization round-trips.
func (s Site) Hash() string {
	return s.HashWithPrecision(DefaultHashPrecision)
}

// HashWithPrecision returns the site's geohash at the given length.
func (s Site) HashWithPrecision(chars uint) string {
	return geohash.EncodeWithPrecision(s.Latitude(), s.Longitude(), chars)
}

// Equal reports whether both sites share the same canonical identity.
func (s Site) Equal(other Site) bool {
	return s.Hash() == other.Hash()
}

func (s Site) String() string {
	return fmt.Sprintf("Site(%v, %v)", s.Longitude(), s.Latitude())
}
