package kml

import (
	"testing"

	"github.com/membrane/fieldcore/element"
)

func TestParseCoordinates(t *testing.T) {
	coords := ParseCoordinates("-98.20,26.07 -98.21,26.08 -98.20,26.08")
	expected := []element.Coordinate{
		{Lat: 26.07, Long: -98.20},
		{Lat: 26.08, Long: -98.21},
		{Lat: 26.08, Long: -98.20},
	}
	if len(coords) != len(expected) {
		t.Fatal(coords)
	}
	for i, c := range coords {
		if c != expected[i] {
			t.Fatalf("%v != %v", coords, expected)
		}
	}
}

func TestParseCoordinatesAltitudeIgnored(t *testing.T) {
	coords := ParseCoordinates("\n\t-98.20,26.07,120.5 -98.21,26.08,0\n")
	if len(coords) != 2 {
		t.Fatal(coords)
	}
	if coords[0] != (element.Coordinate{Lat: 26.07, Long: -98.20}) {
		t.Fatal(coords[0])
	}
}

func TestParseCoordinatesSkipsBadTokens(t *testing.T) {
	for _, test := range []struct {
		text string
		want int
	}{
		{"", 0},
		{"-98.20", 0},
		{"-98.20,26.07 -98.21", 1},
		{"abc,def -98.21,26.08", 1},
		{"-98.20,xyz -98.21,26.08", 1},
	} {
		coords := ParseCoordinates(test.text)
		if len(coords) != test.want {
			t.Errorf("%q: got %d coordinates, want %d", test.text, len(coords), test.want)
		}
	}
}
