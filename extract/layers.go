package extract

import (
	"github.com/membrane/fieldcore/kml"
	"github.com/membrane/fieldcore/mapping"
)

// FolderInfo summarizes one folder for the list-layers inspection.
type FolderInfo struct {
	ID         string
	Name       string
	Placemarks int
	Polygons   int
	Lines      int
	Points     int
	Configured bool
}

// ListLayers enumerates all folders with their placemark and geometry
// counts. Folders without an ID and without placemarks are left out.
func ListLayers(doc *kml.Document, registry *mapping.Registry) []FolderInfo {
	var infos []FolderInfo
	for _, folder := range doc.Folders() {
		info := FolderInfo{
			ID:         folder.ID,
			Name:       folder.Name,
			Placemarks: len(folder.Placemarks),
		}
		for _, pm := range folder.Placemarks {
			info.Polygons += len(pm.AllPolygons())
			info.Lines += len(pm.AllLineStrings())
			info.Points += len(pm.AllPoints())
		}
		_, info.Configured = registry.ByFolder(folder.ID, folder.Name)
		if info.ID == "" && info.Placemarks == 0 {
			continue
		}
		infos = append(infos, info)
	}
	return infos
}
