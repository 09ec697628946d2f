package mapping

// Style is the rendering hint attached to a layer in the output
// document. The zero value marshals as an empty record.
type Style struct {
	Fill        string  `yaml:"fill" json:"fill,omitempty"`
	Stroke      string  `yaml:"stroke" json:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"stroke_width" json:"strokeWidth,omitempty"`
}

var defaultStyles = map[string]Style{
	"phases": {
		Fill:        "rgba(127, 223, 255, 0.3)",
		Stroke:      "rgba(127, 223, 255, 0.7)",
		StrokeWidth: 2,
	},
	"industrialParks": {
		Fill:        "rgba(215, 187, 158, 0.25)",
		Stroke:      "rgba(255, 178, 115, 0.7)",
		StrokeWidth: 1,
	},
	"urbanFootprint": {
		Fill:        "rgba(100, 100, 100, 0.2)",
		Stroke:      "rgba(150, 150, 150, 0.4)",
		StrokeWidth: 0.5,
	},
	"electricity": {
		Fill:        "rgba(255, 223, 127, 0.9)",
		Stroke:      "rgba(0, 255, 85, 0.6)",
		StrokeWidth: 2,
	},
	"lots": {
		Fill:        "rgba(255, 255, 255, 0.08)",
		Stroke:      "rgba(255, 255, 255, 0.4)",
		StrokeWidth: 1,
	},
}
