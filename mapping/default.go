package mapping

import "github.com/membrane/fieldcore/element"

func boolRef(v bool) *bool { return &v }

// Default returns the built-in registry for the misc field export.
// The source_name aliases match the Spanish folder names of exports
// that carry no folder IDs.
func Default() *Registry {
	configs := []*Config{
		{
			ID:         "FeatureLayer50",
			SourceName: "Fases",
			Layer:      "phases",
			Type:       "inovus_phase",
			Geometry:   element.PolygonGeometry,
			Filter:     &NameFilter{ContainsAny: []string{"FASE 1", "FASE 2"}},
			Enabled:    boolRef(true),
		},
		{
			ID:         "FeatureLayer27",
			SourceName: "Parques industriales",
			Layer:      "industrialParks",
			Type:       "industrial_park",
			Geometry:   element.PolygonGeometry,
			Enabled:    boolRef(true),
		},
		{
			ID:         "FeatureLayer58",
			SourceName: "Mancha urbana",
			Layer:      "urbanFootprint",
			Type:       "urban",
			Geometry:   element.PolygonGeometry,
			Enabled:    boolRef(true),
		},
		{
			ID:         "FeatureLayer17",
			SourceName: "SE Eléctricas",
			Layer:      "electricity",
			Type:       "substation",
			Geometry:   element.PointGeometry,
			Enabled:    boolRef(false),
		},
		{
			ID:         "FeatureLayer18",
			SourceName: "Líneas de Distribución",
			Layer:      "electricity",
			Type:       "distribution_line",
			Geometry:   element.LineStringGeometry,
			Enabled:    boolRef(false),
		},
		{
			ID:         "FeatureLayer19",
			SourceName: "Líneas de Transmisión",
			Layer:      "electricity",
			Type:       "transmission_line",
			Geometry:   element.LineStringGeometry,
			Enabled:    boolRef(false),
		},
	}
	r, err := newRegistry(configs, defaultStyles)
	if err != nil {
		panic(err)
	}
	return r
}
