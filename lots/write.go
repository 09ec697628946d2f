package lots

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
)

// WriteFile serializes the document to an indented JSON file. The
// document is encoded in full before anything is written, a failed
// encode leaves no partial file behind.
func (doc *Document) WriteFile(filename string) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding lots document")
	}
	b = append(b, '\n')
	if err := ioutil.WriteFile(filename, b, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	return nil
}
