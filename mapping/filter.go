package mapping

import (
	"strings"

	"github.com/pkg/errors"
)

// NameFilter restricts which placemarks of a folder are extracted.
// Exactly one filter kind must be set. The only kind so far is
// contains_any: a name passes if it contains any of the fragments,
// case-insensitively.
type NameFilter struct {
	ContainsAny []string `yaml:"contains_any"`
}

func (f *NameFilter) validate() error {
	if len(f.ContainsAny) == 0 {
		return errors.New("name filter without contains_any fragments")
	}
	return nil
}

// Match reports whether a placemark name passes the filter. A nil
// filter matches everything.
func (f *NameFilter) Match(name string) bool {
	if f == nil {
		return true
	}
	upper := strings.ToUpper(name)
	for _, fragment := range f.ContainsAny {
		if strings.Contains(upper, strings.ToUpper(fragment)) {
			return true
		}
	}
	return false
}
