// Package mapping holds the layer registry: the table that maps source
// folders of a map export to semantic layers, feature types and the
// geometry to extract from them.
package mapping

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/membrane/fieldcore/element"
)

// Config selects and describes a single source folder. Folders are
// matched by ID first, by folder name second.
type Config struct {
	ID         string               `yaml:"id"`
	SourceName string               `yaml:"source_name"`
	Layer      string               `yaml:"layer"`
	Type       string               `yaml:"type"`
	Geometry   element.GeometryType `yaml:"geometry"`
	Filter     *NameFilter          `yaml:"filter"`
	Enabled    *bool                `yaml:"enabled"`
}

// IsEnabled reports the enabled flag, defaulting to true when the
// registry does not set it.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

type registryConfig struct {
	Layers []*Config        `yaml:"layers"`
	Styles map[string]Style `yaml:"styles"`
}

// Registry is the immutable folder → layer lookup table.
type Registry struct {
	configs []*Config
	byID    map[string]*Config
	byName  map[string]*Config
	styles  map[string]Style
}

// FromFile loads a registry from a YAML file.
func FromFile(filename string) (*Registry, error) {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	r, err := New(b)
	if err != nil {
		return nil, errors.Wrapf(err, "loading registry from %s", filename)
	}
	return r, nil
}

// New parses a YAML registry. Unknown keys are rejected, so a
// misspelled filter kind fails instead of matching everything.
func New(b []byte) (*Registry, error) {
	conf := registryConfig{}
	if err := yaml.UnmarshalStrict(b, &conf); err != nil {
		return nil, err
	}
	return newRegistry(conf.Layers, conf.Styles)
}

func newRegistry(configs []*Config, styles map[string]Style) (*Registry, error) {
	r := &Registry{
		configs: configs,
		byID:    make(map[string]*Config),
		byName:  make(map[string]*Config),
		styles:  styles,
	}
	for _, c := range configs {
		if c.ID == "" && c.SourceName == "" {
			return nil, errors.Errorf("registry entry for layer %q needs id or source_name", c.Layer)
		}
		if c.Layer == "" {
			return nil, errors.Errorf("registry entry %q has no layer", c.ID)
		}
		switch c.Geometry {
		case element.PolygonGeometry, element.LineStringGeometry, element.PointGeometry:
		default:
			return nil, errors.Errorf("registry entry %q has unknown geometry %q", c.ID, c.Geometry)
		}
		if c.Filter != nil {
			if err := c.Filter.validate(); err != nil {
				return nil, errors.Wrapf(err, "registry entry %q", c.ID)
			}
		}
		if c.ID != "" {
			if _, ok := r.byID[c.ID]; ok {
				return nil, errors.Errorf("duplicate registry entry %q", c.ID)
			}
			r.byID[c.ID] = c
		}
		if c.SourceName != "" {
			r.byName[c.SourceName] = c
		}
	}
	return r, nil
}

// Configs returns all entries in registry order. Extraction follows
// this order, it determines the ID counters of the output.
func (r *Registry) Configs() []*Config {
	return r.configs
}

// ByFolder returns the config for a folder, matching the folder ID
// first and the folder name second.
func (r *Registry) ByFolder(id, name string) (*Config, bool) {
	if c, ok := r.byID[id]; ok && id != "" {
		return c, true
	}
	if c, ok := r.byName[name]; ok && name != "" {
		return c, true
	}
	return nil, false
}

// LayerEnabled reports whether a layer is enabled. Layers without a
// registry entry default to enabled.
func (r *Registry) LayerEnabled(layer string) bool {
	for _, c := range r.configs {
		if c.Layer == layer {
			return c.IsEnabled()
		}
	}
	return true
}

// Style returns the style record of a layer, the empty record when the
// layer has none.
func (r *Registry) Style(layer string) Style {
	return r.styles[layer]
}
