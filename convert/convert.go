// Package convert wires the extraction pipeline: archive → markup →
// layer scan → lots document → statistics.
package convert

import (
	"fmt"
	"time"

	"github.com/membrane/fieldcore/config"
	"github.com/membrane/fieldcore/extract"
	"github.com/membrane/fieldcore/kml"
	"github.com/membrane/fieldcore/kmz"
	"github.com/membrane/fieldcore/log"
	"github.com/membrane/fieldcore/lots"
	"github.com/membrane/fieldcore/mapping"
	"github.com/membrane/fieldcore/proj"
	"github.com/membrane/fieldcore/stats"
)

func loadRegistry(filename string) *mapping.Registry {
	if filename == "" {
		return mapping.Default()
	}
	registry, err := mapping.FromFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	return registry
}

func parseInput(input string) *kml.Document {
	content, err := kmz.ExtractDocument(input)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := kml.Parse(content)
	if err != nil {
		log.Fatal(err)
	}
	return doc
}

// Convert runs the whole pipeline and writes the lots document.
func Convert(opts config.Convert) {
	log.SetQuiet(opts.Quiet)
	defer log.Step("converting " + opts.Input)()

	doc := parseInput(opts.Input)
	registry := loadRegistry(opts.Registry)

	var scanner extract.Scanner
	if opts.Legacy {
		log.Println("[info] legacy mode: extracting all polygons")
		scanner = extract.LegacyScan{}
	} else {
		log.Println("[info] multi-layer mode: extracting by folder")
		scanner = &extract.RegistryScan{Registry: registry, Layers: opts.Layers}
	}
	features := scanner.Scan(doc)
	log.Printf("[info] found %d total features", len(features))

	transform := proj.Default()
	document := lots.Build(features, opts.Input, registry, transform, time.Now())
	stats.Collect(document, transform).Log()

	if err := document.WriteFile(opts.Output); err != nil {
		log.Fatal(err)
	}
	log.Printf("[info] written %s", opts.Output)
}

// ListLayers prints the folders of the archive with their placemark
// and geometry counts. No output document is written.
func ListLayers(opts config.Layers) {
	log.SetQuiet(opts.Quiet)

	doc := parseInput(opts.Input)
	registry := loadRegistry(opts.Registry)

	fmt.Println("available layers:")
	for _, info := range extract.ListLayers(doc, registry) {
		mark := " "
		if info.Configured {
			mark = "*"
		}
		name := info.Name
		if len(name) > 30 {
			name = name[:30]
		}
		fmt.Printf("  [%s] %-20s %-30s pm=%3d poly=%3d line=%3d pt=%3d\n",
			mark, info.ID, name, info.Placemarks, info.Polygons, info.Lines, info.Points)
	}
	fmt.Println("\n[*] = configured in registry")
}
