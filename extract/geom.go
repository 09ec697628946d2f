package extract

import (
	"github.com/membrane/fieldcore/element"
	"github.com/membrane/fieldcore/kml"
	"github.com/membrane/fieldcore/log"
)

// Geometries parses the geometries of the expected kind from a
// placemark. Degenerate geometries are dropped, not errors.
func Geometries(pm *kml.Placemark, geomType element.GeometryType) []element.Geometry {
	switch geomType {
	case element.PolygonGeometry:
		return polygons(pm)
	case element.LineStringGeometry:
		return lineStrings(pm)
	case element.PointGeometry:
		return points(pm)
	}
	return nil
}

// polygons parses the outer boundary of each polygon. Rings with fewer
// than three points are dropped.
func polygons(pm *kml.Placemark) []element.Geometry {
	var geoms []element.Geometry
	for _, poly := range pm.AllPolygons() {
		coords := kml.ParseCoordinates(poly.OuterBoundary.LinearRing.Coordinates)
		if len(coords) < 3 {
			if len(coords) > 0 {
				log.Printf("[debug] dropping degenerate ring with %d points in %q", len(coords), pm.Name)
			}
			continue
		}
		geoms = append(geoms, element.Geometry{Coordinates: coords, Type: element.PolygonGeometry})
	}
	return geoms
}

// lineStrings parses line strings. Paths with fewer than two points
// are dropped.
func lineStrings(pm *kml.Placemark) []element.Geometry {
	var geoms []element.Geometry
	for _, line := range pm.AllLineStrings() {
		coords := kml.ParseCoordinates(line.Coordinates)
		if len(coords) < 2 {
			if len(coords) > 0 {
				log.Printf("[debug] dropping degenerate path with %d points in %q", len(coords), pm.Name)
			}
			continue
		}
		geoms = append(geoms, element.Geometry{Coordinates: coords, Type: element.LineStringGeometry})
	}
	return geoms
}

// points parses points, keeping only the first coordinate of each.
func points(pm *kml.Placemark) []element.Geometry {
	var geoms []element.Geometry
	for _, point := range pm.AllPoints() {
		coords := kml.ParseCoordinates(point.Coordinates)
		if len(coords) == 0 {
			continue
		}
		geoms = append(geoms, element.Geometry{Coordinates: coords[:1], Type: element.PointGeometry})
	}
	return geoms
}
