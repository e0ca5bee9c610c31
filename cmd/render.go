package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/tonhe/ifgraph/internal/pnp"
)

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json or php")
	host := fs.String("host", "", "Host name used in graph titles (default: from the XML file)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ifgraph render [-format text|json|php] [-host NAME] FILE.xml")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: FILE argument is required")
		fs.Usage()
		os.Exit(1)
	}
	if !validFormat(*format) {
		fatalf("unknown format %q", *format)
	}

	e := loadEnv()

	src, err := pnp.Load(fs.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}

	title := src.Title()
	if *host != "" {
		title = *host
	}

	e.log.WithField("file", fs.Arg(0)).WithField("datasources", len(src.Datasources)).Debug("Loaded PNP4Nagios XML")

	set, err := e.builder.Build(src.Records(), title)
	if err != nil {
		fatalf("%v", err)
	}
	if err := writeSet(os.Stdout, set, *format); err != nil {
		fatalf("writing output: %v", err)
	}
}
