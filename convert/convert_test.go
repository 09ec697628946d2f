package convert

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/membrane/fieldcore/config"
	"github.com/membrane/fieldcore/lots"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <Folder id="FeatureLayer50">
    <name>Fases</name>
    <Placemark>
      <name>Fase 1 Norte</name>
      <description>north</description>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        -98.20,26.07 -98.21,26.08 -98.20,26.08 -98.20,26.07
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
    <Placemark>
      <name>Otro</name>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        -98.30,26.17 -98.31,26.18 -98.30,26.18 -98.30,26.17
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
  </Folder>
  <Folder id="FeatureLayer27">
    <name>Parques industriales</name>
    <Placemark>
      <name>Parque A</name>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        -98.22,26.02 -98.23,26.03 -98.22,26.03 -98.22,26.02
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
  </Folder>
</Document>
</kml>`

func writeTestArchive(t *testing.T, dir string) string {
	filename := filepath.Join(dir, "FIELD_misc_export.kmz")
	f, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	z := zip.NewWriter(f)
	w, err := z.Create("doc.kml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(testDoc)); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestConvert(t *testing.T) {
	dir, err := ioutil.TempDir("", "convert")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	archive := writeTestArchive(t, dir)
	output := filepath.Join(dir, "lots.json")
	Convert(config.Convert{
		Base:   config.Base{Input: archive, Quiet: true},
		Output: output,
	})

	b, err := ioutil.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	doc := lots.Document{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Version != "2.0" || doc.SourceKMZ != "FIELD_misc_export.kmz" {
		t.Fatal(doc.Version, doc.SourceKMZ)
	}
	// Otro fails the phases name filter
	if len(doc.Lots) != 2 {
		t.Fatal(doc.Lots)
	}
	if doc.Lots[0].ID != "phas_001" || doc.Lots[0].Name != "Fase 1 Norte" {
		t.Fatal(doc.Lots[0])
	}
	if doc.Lots[1].ID != "park_001" {
		t.Fatal(doc.Lots[1])
	}
	if len(doc.Layers) != 2 {
		t.Fatal(doc.Layers)
	}

	// byte-identical on a second run with identical input
	second := filepath.Join(dir, "lots2.json")
	Convert(config.Convert{
		Base:   config.Base{Input: archive, Quiet: true},
		Output: second,
	})
	b2, err := ioutil.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, b2) {
		t.Fatal("output not reproducible")
	}
}

func TestConvertLegacy(t *testing.T) {
	dir, err := ioutil.TempDir("", "convert")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	archive := writeTestArchive(t, dir)
	output := filepath.Join(dir, "lots.json")
	Convert(config.Convert{
		Base:   config.Base{Input: archive, Quiet: true},
		Output: output,
		Legacy: true,
	})

	b, err := ioutil.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	doc := lots.Document{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	// legacy mode keeps every polygon placemark under the default layer
	if len(doc.Lots) != 3 {
		t.Fatal(doc.Lots)
	}
	expected := []string{"lot_001", "lot_002", "lot_003"}
	for i, lot := range doc.Lots {
		if lot.Layer != "lots" {
			t.Fatal(lot)
		}
		if lot.ID != expected[i] {
			t.Fatal(lot.ID)
		}
	}
}
