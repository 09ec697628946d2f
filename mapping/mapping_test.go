package mapping

import (
	"testing"

	"github.com/membrane/fieldcore/element"
)

const testRegistry = `
layers:
  - id: FeatureLayer50
    source_name: Fases
    layer: phases
    type: inovus_phase
    geometry: Polygon
    filter:
      contains_any: ["FASE 1", "FASE 2"]
    enabled: true
  - id: FeatureLayer17
    layer: electricity
    type: substation
    geometry: Point
    enabled: false
  - id: FeatureLayer99
    layer: misc
    geometry: LineString
styles:
  phases:
    fill: "rgba(127, 223, 255, 0.3)"
    stroke: "rgba(127, 223, 255, 0.7)"
    stroke_width: 2
`

func TestNew(t *testing.T) {
	r, err := New([]byte(testRegistry))
	if err != nil {
		t.Fatal(err)
	}
	configs := r.Configs()
	if len(configs) != 3 {
		t.Fatal(configs)
	}
	if configs[0].Layer != "phases" || configs[0].Geometry != element.PolygonGeometry {
		t.Fatal(configs[0])
	}
	if configs[0].Filter == nil || len(configs[0].Filter.ContainsAny) != 2 {
		t.Fatal(configs[0].Filter)
	}
	if configs[1].IsEnabled() {
		t.Fatal("electricity should be disabled")
	}
	// enabled defaults to true
	if !configs[2].IsEnabled() {
		t.Fatal("misc should default to enabled")
	}
}

func TestByFolder(t *testing.T) {
	r, err := New([]byte(testRegistry))
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := r.ByFolder("FeatureLayer50", ""); !ok || c.Layer != "phases" {
		t.Fatal(c, ok)
	}
	// name alias when the id does not match
	if c, ok := r.ByFolder("", "Fases"); !ok || c.Layer != "phases" {
		t.Fatal(c, ok)
	}
	if _, ok := r.ByFolder("FeatureLayer01", "unknown"); ok {
		t.Fatal("unexpected match")
	}
}

func TestLayerEnabled(t *testing.T) {
	r, err := New([]byte(testRegistry))
	if err != nil {
		t.Fatal(err)
	}
	if !r.LayerEnabled("phases") {
		t.Fatal("phases should be enabled")
	}
	if r.LayerEnabled("electricity") {
		t.Fatal("electricity should be disabled")
	}
	if !r.LayerEnabled("lots") {
		t.Fatal("unconfigured layers default to enabled")
	}
}

func TestStyle(t *testing.T) {
	r, err := New([]byte(testRegistry))
	if err != nil {
		t.Fatal(err)
	}
	if s := r.Style("phases"); s.StrokeWidth != 2 {
		t.Fatal(s)
	}
	if s := r.Style("unknown"); s != (Style{}) {
		t.Fatal(s)
	}
}

func TestNewErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		yaml string
	}{
		{"unknown geometry", `
layers:
  - id: F1
    layer: l
    geometry: Circle
`},
		{"missing layer", `
layers:
  - id: F1
    geometry: Polygon
`},
		{"missing id and source_name", `
layers:
  - layer: l
    geometry: Polygon
`},
		{"duplicate id", `
layers:
  - {id: F1, layer: a, geometry: Polygon}
  - {id: F1, layer: b, geometry: Polygon}
`},
		{"unknown filter kind", `
layers:
  - id: F1
    layer: l
    geometry: Polygon
    filter:
      name_prefix: ["FASE"]
`},
		{"empty filter", `
layers:
  - id: F1
    layer: l
    geometry: Polygon
    filter: {}
`},
	} {
		if _, err := New([]byte(test.yaml)); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

func TestNameFilterMatch(t *testing.T) {
	filter := &NameFilter{ContainsAny: []string{"FASE 1", "FASE 2"}}
	for _, test := range []struct {
		name string
		want bool
	}{
		{"Fase 1 Norte", true},
		{"FASE 2", true},
		{"fase 2 sur", true},
		{"Otro", false},
		{"Fase 3", false},
		{"", false},
	} {
		if got := filter.Match(test.name); got != test.want {
			t.Errorf("%q: got %v, want %v", test.name, got, test.want)
		}
	}

	var nilFilter *NameFilter
	if !nilFilter.Match("anything") {
		t.Fatal("nil filter should match")
	}
}

func TestDefault(t *testing.T) {
	r := Default()
	c, ok := r.ByFolder("FeatureLayer50", "")
	if !ok || c.Layer != "phases" || c.Type != "inovus_phase" {
		t.Fatal(c, ok)
	}
	if !c.Filter.Match("Fase 1 Norte") || c.Filter.Match("Otro") {
		t.Fatal("phases filter broken")
	}
	if c, ok := r.ByFolder("", "Parques industriales"); !ok || c.Layer != "industrialParks" {
		t.Fatal(c, ok)
	}
	if r.LayerEnabled("electricity") {
		t.Fatal("electricity should be disabled")
	}
	if r.Style("urbanFootprint").StrokeWidth != 0.5 {
		t.Fatal(r.Style("urbanFootprint"))
	}
}
