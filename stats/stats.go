// Package stats aggregates counts and bounding boxes over a finished
// lots document.
package stats

import (
	"github.com/membrane/fieldcore/element"
	"github.com/membrane/fieldcore/log"
	"github.com/membrane/fieldcore/lots"
	"github.com/membrane/fieldcore/proj"
)

// Range is a (min, max) pair. Empty documents report (0, 0).
type Range [2]float64

type Statistics struct {
	Lots       int
	Geometries int
	ByLayer    map[string]int
	ByGeometry map[element.GeometryType]int
	LatRange   Range
	LonRange   Range
	// Local-meter ranges relative to the transform origin.
	XRange Range
	YRange Range
}

// Collect computes the statistics of a document. A document without
// coordinates yields zero counts and (0, 0) ranges.
func Collect(doc *lots.Document, t *proj.Transform) *Statistics {
	s := &Statistics{
		Lots:    len(doc.Lots),
		ByLayer: make(map[string]int),
		ByGeometry: map[element.GeometryType]int{
			element.PolygonGeometry:    0,
			element.LineStringGeometry: 0,
			element.PointGeometry:      0,
		},
	}

	var lats, longs []float64
	for _, lot := range doc.Lots {
		s.ByLayer[lot.Layer]++
		s.Geometries += len(lot.Polygons)
		for _, geom := range lot.Polygons {
			s.ByGeometry[geom.Type]++
			for _, coord := range geom.Coordinates {
				lats = append(lats, coord.Lat)
				longs = append(longs, coord.Long)
			}
		}
	}

	if len(lats) > 0 {
		s.LatRange = minMax(lats)
		s.LonRange = minMax(longs)
		xMin, yMin := t.Forward(s.LatRange[0], s.LonRange[0])
		xMax, yMax := t.Forward(s.LatRange[1], s.LonRange[1])
		s.XRange = Range{xMin, xMax}
		s.YRange = Range{yMin, yMax}
	}
	return s
}

func minMax(values []float64) Range {
	r := Range{values[0], values[0]}
	for _, v := range values[1:] {
		if v < r[0] {
			r[0] = v
		}
		if v > r[1] {
			r[1] = v
		}
	}
	return r
}

// Log writes the statistics block the way the conversion reports it.
func (s *Statistics) Log() {
	log.Printf("[info] features: %d, geometries: %d", s.Lots, s.Geometries)
	log.Printf("[info] by layer: %v", s.ByLayer)
	log.Printf("[info] by geometry: %v", s.ByGeometry)
	log.Printf("[info] lat range: %.6f to %.6f", s.LatRange[0], s.LatRange[1])
	log.Printf("[info] lon range: %.6f to %.6f", s.LonRange[0], s.LonRange[1])
	log.Printf("[info] y range (m from origin): %.0f to %.0f", s.YRange[0], s.YRange[1])
	log.Printf("[info] x range (m from origin): %.0f to %.0f", s.XRange[0], s.XRange[1])
}
