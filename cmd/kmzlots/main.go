package main

import (
	"fmt"
	"os"

	"github.com/membrane/fieldcore"
	"github.com/membrane/fieldcore/config"
	"github.com/membrane/fieldcore/convert"
	"github.com/membrane/fieldcore/log"
)

func PrintCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Println("Available commands:")
	fmt.Println("\tconvert")
	fmt.Println("\tlayers")
	fmt.Println("\tversion")
}

func Main(usage func()) {
	if len(os.Args) <= 1 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert":
		opts := config.ParseConvert(os.Args[2:])
		convert.Convert(opts)
	case "layers":
		opts := config.ParseLayers(os.Args[2:])
		convert.ListLayers(opts)
	case "version":
		fmt.Println(fieldcore.Version)
		os.Exit(0)
	default:
		usage()
		log.Fatalf("invalid command: '%s'", os.Args[1])
	}
	os.Exit(0)
}

func main() {
	Main(PrintCmds)
}
