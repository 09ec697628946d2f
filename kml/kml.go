// Package kml parses KML markup into a traversable element tree.
package kml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Namespace of supported KML documents.
const Namespace = "http://www.opengis.net/kml/2.2"

// MalformedDocumentError is returned when the markup cannot be parsed.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed KML document: %s", e.Err)
}

type Document struct {
	root root
}

type root struct {
	XMLName    xml.Name     `xml:"http://www.opengis.net/kml/2.2 kml"`
	Document   *Folder      `xml:"Document"`
	Folders    []Folder     `xml:"Folder"`
	Placemarks []*Placemark `xml:"Placemark"`
}

// Folder is a KML Folder (or Document) element. Placemarks holds the
// direct children only, nested folders are in Folders.
type Folder struct {
	ID         string       `xml:"id,attr"`
	Name       string       `xml:"name"`
	Placemarks []*Placemark `xml:"Placemark"`
	Folders    []Folder     `xml:"Folder"`
}

type Placemark struct {
	Name          string          `xml:"name"`
	Description   string          `xml:"description"`
	Polygons      []Polygon       `xml:"Polygon"`
	LineStrings   []LineString    `xml:"LineString"`
	Points        []Point         `xml:"Point"`
	MultiGeometry []MultiGeometry `xml:"MultiGeometry"`
}

// MultiGeometry groups geometries and may nest further MultiGeometry
// elements.
type MultiGeometry struct {
	Polygons      []Polygon       `xml:"Polygon"`
	LineStrings   []LineString    `xml:"LineString"`
	Points        []Point         `xml:"Point"`
	MultiGeometry []MultiGeometry `xml:"MultiGeometry"`
}

type Polygon struct {
	OuterBoundary struct {
		LinearRing struct {
			Coordinates string `xml:"coordinates"`
		} `xml:"LinearRing"`
	} `xml:"outerBoundaryIs"`
}

type LineString struct {
	Coordinates string `xml:"coordinates"`
}

type Point struct {
	Coordinates string `xml:"coordinates"`
}

// Parse parses KML markup into a Document. Name and description text
// is trimmed of surrounding whitespace.
func Parse(content string) (*Document, error) {
	doc := &Document{}
	if err := xml.Unmarshal([]byte(content), &doc.root); err != nil {
		return nil, &MalformedDocumentError{Err: err}
	}
	if doc.root.Document != nil {
		trimFolder(doc.root.Document)
	}
	trimFolders(doc.root.Folders)
	trimPlacemarks(doc.root.Placemarks)
	return doc, nil
}

func trimFolder(f *Folder) {
	f.Name = strings.TrimSpace(f.Name)
	trimPlacemarks(f.Placemarks)
	trimFolders(f.Folders)
}

func trimFolders(folders []Folder) {
	for i := range folders {
		trimFolder(&folders[i])
	}
}

func trimPlacemarks(placemarks []*Placemark) {
	for _, pm := range placemarks {
		pm.Name = strings.TrimSpace(pm.Name)
		pm.Description = strings.TrimSpace(pm.Description)
	}
}

// Folders returns all folders of the document, any nesting depth, in
// document order.
func (d *Document) Folders() []*Folder {
	var result []*Folder
	var walk func(folders []Folder)
	walk = func(folders []Folder) {
		for i := range folders {
			result = append(result, &folders[i])
			walk(folders[i].Folders)
		}
	}
	if d.root.Document != nil {
		walk(d.root.Document.Folders)
	}
	walk(d.root.Folders)
	return result
}

// Placemarks returns every placemark of the document, including
// placemarks nested in folders.
func (d *Document) Placemarks() []*Placemark {
	var result []*Placemark
	var walk func(folders []Folder)
	walk = func(folders []Folder) {
		for i := range folders {
			result = append(result, folders[i].Placemarks...)
			walk(folders[i].Folders)
		}
	}
	if d.root.Document != nil {
		result = append(result, d.root.Document.Placemarks...)
		walk(d.root.Document.Folders)
	}
	result = append(result, d.root.Placemarks...)
	walk(d.root.Folders)
	return result
}

// AllPolygons returns the placemark's polygons, descending into
// MultiGeometry elements.
func (p *Placemark) AllPolygons() []Polygon {
	result := p.Polygons
	for _, mg := range p.MultiGeometry {
		result = append(result, mg.allPolygons()...)
	}
	return result
}

func (m *MultiGeometry) allPolygons() []Polygon {
	result := m.Polygons
	for _, mg := range m.MultiGeometry {
		result = append(result, mg.allPolygons()...)
	}
	return result
}

// AllLineStrings returns the placemark's line strings, descending into
// MultiGeometry elements.
func (p *Placemark) AllLineStrings() []LineString {
	result := p.LineStrings
	for _, mg := range p.MultiGeometry {
		result = append(result, mg.allLineStrings()...)
	}
	return result
}

func (m *MultiGeometry) allLineStrings() []LineString {
	result := m.LineStrings
	for _, mg := range m.MultiGeometry {
		result = append(result, mg.allLineStrings()...)
	}
	return result
}

// AllPoints returns the placemark's points, descending into
// MultiGeometry elements.
func (p *Placemark) AllPoints() []Point {
	result := p.Points
	for _, mg := range p.MultiGeometry {
		result = append(result, mg.allPoints()...)
	}
	return result
}

func (m *MultiGeometry) allPoints() []Point {
	result := m.Points
	for _, mg := range m.MultiGeometry {
		result = append(result, mg.allPoints()...)
	}
	return result
}
