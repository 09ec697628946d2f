package element

import (
	"encoding/json"
	"fmt"
)

// Coordinate is a geodetic position in degrees. It marshals as a
// two-element [lat, lon] array.
type Coordinate struct {
	Lat  float64
	Long float64
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Long})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) < 2 {
		return fmt.Errorf("coordinate needs two elements, got %d", len(pair))
	}
	c.Lat = pair[0]
	c.Long = pair[1]
	return nil
}

type GeometryType string

const (
	PolygonGeometry    GeometryType = "Polygon"
	LineStringGeometry GeometryType = "LineString"
	PointGeometry      GeometryType = "Point"
)

// Geometry is a single ring, path or point with its coordinates in
// (lat, lon) order.
type Geometry struct {
	Coordinates []Coordinate `json:"coordinates"`
	Type        GeometryType `json:"geometry"`
}

// Feature is an extracted placemark before ID assignment. Layer and
// FeatureType are empty for features from a legacy whole-document scan.
type Feature struct {
	Name        string
	Description string
	Layer       string
	FeatureType string
	Geometries  []Geometry
}
