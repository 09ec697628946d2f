// Package proj converts geodetic degrees to local planar meters with a
// flat-earth approximation around a fixed origin.
package proj

import "math"

// Origin of the local frame, the PHARR port of entry. Matches the
// transform of the overlay bundle.
const (
	OriginLat = 26.06669701044433
	OriginLon = -98.20517760083658
)

const MetersPerDegLat = 111320.0

// Transform holds the precomputed scale factors for one origin.
type Transform struct {
	OriginLat       float64
	OriginLon       float64
	MetersPerDegLat float64
	MetersPerDegLon float64
}

// New returns a Transform for the given origin. The longitude scale is
// computed once from the origin latitude.
func New(originLat, originLon float64) *Transform {
	return &Transform{
		OriginLat:       originLat,
		OriginLon:       originLon,
		MetersPerDegLat: MetersPerDegLat,
		MetersPerDegLon: MetersPerDegLat * math.Cos(originLat*math.Pi/180),
	}
}

// Default returns the Transform with the PHARR origin.
func Default() *Transform {
	return New(OriginLat, OriginLon)
}

// Forward converts geodetic degrees to local meters east/north of the
// origin.
func (t *Transform) Forward(lat, long float64) (x, y float64) {
	x = (long - t.OriginLon) * t.MetersPerDegLon
	y = (lat - t.OriginLat) * t.MetersPerDegLat
	return x, y
}

// Inverse converts local meters back to geodetic degrees.
func (t *Transform) Inverse(x, y float64) (lat, long float64) {
	lat = y/t.MetersPerDegLat + t.OriginLat
	long = x/t.MetersPerDegLon + t.OriginLon
	return lat, long
}
