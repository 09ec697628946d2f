// Package lots assembles extracted features into the versioned lots
// document and assigns per-layer sequential IDs.
package lots

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/membrane/fieldcore/element"
	"github.com/membrane/fieldcore/mapping"
	"github.com/membrane/fieldcore/proj"
)

// Version of the lots document schema.
const Version = "2.0"

// DefaultLayer tags features from legacy scans that carry no layer.
const DefaultLayer = "lots"

// Record is one persisted feature.
type Record struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Comment  string             `json:"comment"`
	Layer    string             `json:"layer"`
	Type     string             `json:"type,omitempty"`
	RegionID *string            `json:"region_id"`
	Polygons []element.Geometry `json:"polygons"`
	Priority int                `json:"priority"`
}

type LayerMeta struct {
	Enabled bool          `json:"enabled"`
	Style   mapping.Style `json:"style"`
}

type TransformMeta struct {
	OriginLat       float64 `json:"origin_lat"`
	OriginLon       float64 `json:"origin_lon"`
	MetersPerDegLat float64 `json:"meters_per_deg_lat"`
	MetersPerDegLon float64 `json:"meters_per_deg_lon"`
	Notes           string  `json:"notes"`
}

type Document struct {
	Version   string               `json:"version"`
	Generated string               `json:"generated"`
	SourceKMZ string               `json:"source_kmz"`
	Transform TransformMeta        `json:"transform"`
	Layers    map[string]LayerMeta `json:"layers"`
	Lots      []Record             `json:"lots"`
}

var prefixes = map[string]string{
	"phases":          "phas",
	"industrialParks": "park",
	"urbanFootprint":  "urbn",
	"electricity":     "elec",
	"lots":            "lot",
}

// Prefix returns the ID prefix of a layer: the short code from the
// prefix table, or the truncated layer name when the table has none.
func Prefix(layer string) string {
	if p, ok := prefixes[layer]; ok {
		return p
	}
	if layer == "" {
		return "lot"
	}
	if len(layer) > 4 {
		return layer[:4]
	}
	return layer
}

// Build assembles the output document. IDs count per layer in feature
// order, starting at 1. The counters live only for this call, repeated
// builds of the same features yield the same IDs.
func Build(features []element.Feature, sourceKMZ string, registry *mapping.Registry, t *proj.Transform, generated time.Time) *Document {
	counters := make(map[string]int)
	records := make([]Record, 0, len(features))
	for _, feat := range features {
		layer := feat.Layer
		if layer == "" {
			layer = DefaultLayer
		}
		counters[layer]++
		records = append(records, Record{
			ID:       fmt.Sprintf("%s_%03d", Prefix(layer), counters[layer]),
			Name:     feat.Name,
			Comment:  feat.Description,
			Layer:    layer,
			Type:     feat.FeatureType,
			Polygons: feat.Geometries,
			Priority: 0,
		})
	}

	layers := make(map[string]LayerMeta)
	for _, rec := range records {
		if _, ok := layers[rec.Layer]; ok {
			continue
		}
		layers[rec.Layer] = LayerMeta{
			Enabled: registry.LayerEnabled(rec.Layer),
			Style:   registry.Style(rec.Layer),
		}
	}

	return &Document{
		Version:   Version,
		Generated: generated.Format("2006-01-02"),
		SourceKMZ: filepath.Base(sourceKMZ),
		Transform: TransformMeta{
			OriginLat:       t.OriginLat,
			OriginLon:       t.OriginLon,
			MetersPerDegLat: t.MetersPerDegLat,
			MetersPerDegLon: math.Round(t.MetersPerDegLon*100) / 100,
			Notes:           "PHARR POE is coordinate origin (0,0). Same as bundle transform.",
		},
		Layers: layers,
		Lots:   records,
	}
}
