// Package kmz reads KML documents out of zipped map exports.
package kmz

import (
	"archive/zip"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"

	"github.com/membrane/fieldcore/log"
)

const canonicalDoc = "doc.kml"
const docSuffix = ".kml"

// NotFoundError is returned when an archive contains no KML document.
type NotFoundError struct {
	Archive string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no KML document found in %s", e.Archive)
}

// ExtractDocument returns the markup text of the KML document inside
// the archive. doc.kml is preferred, otherwise the first .kml entry is
// used. The archive is closed before ExtractDocument returns.
func ExtractDocument(filename string) (string, error) {
	z, err := zip.OpenReader(filename)
	if err != nil {
		return "", errors.Wrapf(err, "opening archive %s", filename)
	}
	defer z.Close()

	var doc *zip.File
	for _, f := range z.File {
		if !strings.HasSuffix(f.Name, docSuffix) {
			continue
		}
		if f.Name == canonicalDoc {
			doc = f
			break
		}
		if doc == nil {
			doc = f
		}
	}
	if doc == nil {
		return "", &NotFoundError{Archive: filename}
	}
	log.Printf("[info] extracting %s from %s", doc.Name, filename)

	r, err := doc.Open()
	if err != nil {
		return "", errors.Wrapf(err, "opening %s in %s", doc.Name, filename)
	}
	defer r.Close()

	content, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s from %s", doc.Name, filename)
	}
	return string(content), nil
}
