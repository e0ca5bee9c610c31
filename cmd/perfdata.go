package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tonhe/ifgraph/internal/inventory"
	"github.com/tonhe/ifgraph/internal/pnp"
)

func perfdataCmd(args []string) {
	e := loadEnv()

	fs := flag.NewFlagSet("perfdata", flag.ExitOnError)
	host := fs.String("host", "", "Host name (required)")
	display := fs.String("display-name", "", "Host name used in graph titles (default: -host)")
	service := fs.String("service", inventory.DefaultService, "Service description the check runs under")
	rrdDir := fs.String("rrd-dir", e.cfg.RRDDir, "PNP4Nagios perfdata directory")
	format := fs.String("format", "text", "Output format: text, json or php")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ifgraph perfdata -host NAME [-service NAME] [-rrd-dir DIR] [-format FORMAT] [OUTPUT]")
		fmt.Fprintln(os.Stderr, "Plugin OUTPUT is read from stdin when omitted.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *host == "" {
		fmt.Fprintln(os.Stderr, "Error: -host is required")
		fs.Usage()
		os.Exit(1)
	}
	if !validFormat(*format) {
		fatalf("unknown format %q", *format)
	}

	output := strings.Join(fs.Args(), " ")
	if output == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		output = string(data)
	}

	metrics, err := pnp.ParsePerfdata(output)
	if err != nil {
		fatalf("%v", err)
	}
	if len(metrics) == 0 {
		e.log.Warn("Plugin output contains no perfdata")
	}

	title := *host
	if *display != "" {
		title = *display
	}

	records := pnp.PerfdataRecords(metrics, *rrdDir, *host, *service)
	set, err := e.builder.Build(records, title)
	if err != nil {
		fatalf("%v", err)
	}
	if err := writeSet(os.Stdout, set, *format); err != nil {
		fatalf("writing output: %v", err)
	}
}
