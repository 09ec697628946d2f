package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

// Config are the defaults loadable from a JSON config file. Command
// line flags take precedence.
type Config struct {
	Output   string `json:"output"`
	Registry string `json:"registry"`
	Layers   string `json:"layers"`
}

const defaultOutput = "lots.json"

var ConvertFlags = flag.NewFlagSet("convert", flag.ExitOnError)
var LayersFlags = flag.NewFlagSet("layers", flag.ExitOnError)

type _BaseOptions struct {
	Registry   string
	ConfigFile string
	Quiet      bool
}

type Base struct {
	Input    string
	Registry string
	Quiet    bool
}

type Convert struct {
	Base
	Output string
	Layers []string
	Legacy bool
}

type Layers struct {
	Base
}

var baseOptions = _BaseOptions{}

type _ConvertOptions struct {
	Output string
	Layers string
	Legacy bool
}

var convertOptions = _ConvertOptions{}

func addBaseFlags(flags *flag.FlagSet) {
	flags.StringVar(&baseOptions.Registry, "registry", "", "layer registry file (yaml)")
	flags.StringVar(&baseOptions.ConfigFile, "config", "", "config (json)")
	flags.BoolVar(&baseOptions.Quiet, "quiet", false, "quiet log output")
}

func init() {
	ConvertFlags.Usage = UsageConvert
	LayersFlags.Usage = UsageLayers

	addBaseFlags(ConvertFlags)
	ConvertFlags.StringVar(&convertOptions.Output, "output", defaultOutput, "output JSON file")
	ConvertFlags.StringVar(&convertOptions.Layers, "layers", "", "comma separated layer allow-list")
	ConvertFlags.BoolVar(&convertOptions.Legacy, "legacy", false, "extract all polygons, ignore the registry")

	addBaseFlags(LayersFlags)
}

func UsageConvert() {
	fmt.Fprintf(os.Stderr, "Usage: %s %s [args] input.kmz\n\n", os.Args[0], os.Args[1])
	ConvertFlags.PrintDefaults()
	os.Exit(2)
}

func UsageLayers() {
	fmt.Fprintf(os.Stderr, "Usage: %s %s [args] input.kmz\n\n", os.Args[0], os.Args[1])
	LayersFlags.PrintDefaults()
	os.Exit(2)
}

func fromConfigFile(filename string) (*Config, error) {
	conf := &Config{Output: defaultOutput}
	if filename == "" {
		return conf, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(conf); err != nil {
		return nil, err
	}
	if conf.Output == "" {
		conf.Output = defaultOutput
	}
	return conf, nil
}

func splitLayers(layers string) []string {
	if layers == "" {
		return nil
	}
	var result []string
	for _, layer := range strings.Split(layers, ",") {
		if layer = strings.TrimSpace(layer); layer != "" {
			result = append(result, layer)
		}
	}
	return result
}

// ParseConvert parses args of the convert command. The input archive
// is the single positional argument.
func ParseConvert(args []string) Convert {
	if len(args) == 0 {
		UsageConvert()
	}
	if err := ConvertFlags.Parse(args); err != nil {
		log.Fatal(err)
	}
	conf, err := fromConfigFile(baseOptions.ConfigFile)
	if err != nil {
		log.Fatal(err)
	}

	opts := Convert{
		Base: Base{
			Input:    ConvertFlags.Arg(0),
			Registry: baseOptions.Registry,
			Quiet:    baseOptions.Quiet,
		},
		Output: convertOptions.Output,
		Layers: splitLayers(convertOptions.Layers),
		Legacy: convertOptions.Legacy,
	}
	if opts.Registry == "" {
		opts.Registry = conf.Registry
	}
	if opts.Output == defaultOutput {
		opts.Output = conf.Output
	}
	if len(opts.Layers) == 0 {
		opts.Layers = splitLayers(conf.Layers)
	}

	if errs := opts.check(); len(errs) != 0 {
		reportErrors(errs)
		UsageConvert()
	}
	return opts
}

// ParseLayers parses args of the layers command.
func ParseLayers(args []string) Layers {
	if len(args) == 0 {
		UsageLayers()
	}
	if err := LayersFlags.Parse(args); err != nil {
		log.Fatal(err)
	}
	conf, err := fromConfigFile(baseOptions.ConfigFile)
	if err != nil {
		log.Fatal(err)
	}

	opts := Layers{
		Base: Base{
			Input:    LayersFlags.Arg(0),
			Registry: baseOptions.Registry,
			Quiet:    baseOptions.Quiet,
		},
	}
	if opts.Registry == "" {
		opts.Registry = conf.Registry
	}

	if errs := opts.check(); len(errs) != 0 {
		reportErrors(errs)
		UsageLayers()
	}
	return opts
}

func (o *Base) check() []error {
	errs := []error{}
	if o.Input == "" {
		errs = append(errs, errors.New("missing input archive"))
	}
	return errs
}

func (o *Convert) check() []error {
	errs := o.Base.check()
	if o.Legacy && len(o.Layers) != 0 {
		errs = append(errs, errors.New("-legacy and -layers are mutually exclusive"))
	}
	if o.Output == "" {
		errs = append(errs, errors.New("missing output file"))
	}
	return errs
}

func reportErrors(errs []error) {
	fmt.Println("errors in config/options:")
	for _, err := range errs {
		fmt.Printf("\t%s\n", err)
	}
	os.Exit(1)
}
