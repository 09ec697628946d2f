package kml

import (
	"strconv"
	"strings"

	"github.com/membrane/fieldcore/element"
	"github.com/membrane/fieldcore/log"
)

// ParseCoordinates parses a KML coordinate string. KML stores
// whitespace-separated lon,lat[,alt] tuples, the result is in
// (lat, lon) order. Altitude is dropped. Tokens with fewer than two
// numeric fields are skipped.
func ParseCoordinates(text string) []element.Coordinate {
	var coords []element.Coordinate
	for _, token := range strings.Fields(text) {
		parts := strings.Split(token, ",")
		if len(parts) < 2 {
			log.Printf("[debug] skipping coordinate token %q", token)
			continue
		}
		long, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Printf("[debug] skipping coordinate token %q: %s", token, err)
			continue
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Printf("[debug] skipping coordinate token %q: %s", token, err)
			continue
		}
		coords = append(coords, element.Coordinate{Lat: lat, Long: long})
	}
	return coords
}
