// Package extract turns a parsed KML document into normalized
// features, either driven by the layer registry or with the legacy
// whole-document polygon scan.
package extract

import (
	"github.com/membrane/fieldcore/element"
	"github.com/membrane/fieldcore/kml"
	"github.com/membrane/fieldcore/log"
	"github.com/membrane/fieldcore/mapping"
)

// Scanner extracts features from a document. The two implementations
// are RegistryScan and LegacyScan, selected by the run mode.
type Scanner interface {
	Scan(doc *kml.Document) []element.Feature
}

// RegistryScan extracts folder by folder in registry order. Layers may
// restrict extraction to an allow-list of layer names.
type RegistryScan struct {
	Registry *mapping.Registry
	Layers   []string
}

func (s *RegistryScan) Scan(doc *kml.Document) []element.Feature {
	var allowed map[string]bool
	if len(s.Layers) > 0 {
		allowed = make(map[string]bool)
		for _, layer := range s.Layers {
			allowed[layer] = true
		}
	}

	folders := doc.Folders()
	var features []element.Feature
	for _, conf := range s.Registry.Configs() {
		if allowed != nil && !allowed[conf.Layer] {
			continue
		}
		folder := findFolder(folders, conf)
		if folder == nil {
			log.Printf("[warn] folder %s not found", conf.ID)
			continue
		}
		log.Printf("[info] extracting %s -> %s/%s", conf.ID, conf.Layer, conf.Type)
		n := 0
		for _, pm := range folder.Placemarks {
			if !conf.Filter.Match(pm.Name) {
				continue
			}
			geoms := Geometries(pm, conf.Geometry)
			if len(geoms) == 0 {
				continue
			}
			features = append(features, element.Feature{
				Name:        pm.Name,
				Description: pm.Description,
				Layer:       conf.Layer,
				FeatureType: conf.Type,
				Geometries:  geoms,
			})
			n++
		}
		log.Printf("[info]   found %d features", n)
	}

	for _, folder := range folders {
		if _, ok := s.Registry.ByFolder(folder.ID, folder.Name); !ok && folder.ID != "" {
			log.Printf("[debug] folder %s (%q) not in registry, skipped", folder.ID, folder.Name)
		}
	}
	return features
}

func findFolder(folders []*kml.Folder, conf *mapping.Config) *kml.Folder {
	if conf.ID != "" {
		for _, f := range folders {
			if f.ID == conf.ID {
				return f
			}
		}
	}
	if conf.SourceName != "" {
		for _, f := range folders {
			if f.Name == conf.SourceName {
				return f
			}
		}
	}
	return nil
}

// LegacyScan ignores the registry and extracts every placemark with
// polygon geometry. Features carry no layer, the assembler tags them
// with the default layer.
type LegacyScan struct{}

func (LegacyScan) Scan(doc *kml.Document) []element.Feature {
	var features []element.Feature
	for _, pm := range doc.Placemarks() {
		geoms := polygons(pm)
		if len(geoms) == 0 {
			continue
		}
		features = append(features, element.Feature{
			Name:        pm.Name,
			Description: pm.Description,
			Geometries:  geoms,
		})
	}
	return features
}
