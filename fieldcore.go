package fieldcore

var Version string

// buildVersion gets replaced while building with
// go build -ldflags "-X github.com/membrane/fieldcore.buildVersion=1234"
var buildVersion string

func init() {
	Version = "2.0.0"
	Version += buildVersion
}
