package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tonhe/ifgraph/internal/config"
	"github.com/tonhe/ifgraph/internal/graph"
	"github.com/tonhe/ifgraph/internal/logging"
)

// env bundles what every graph-producing command needs.
type env struct {
	cfg     *config.Config
	log     *logrus.Logger
	builder graph.Builder
}

// loadEnv loads the config, sets up logging and builds the graph builder,
// exiting on invalid settings.
func loadEnv() env {
	cfg := loadOrDefaultConfig()

	log, err := logging.Setup(cfg.LogLevel, os.Stderr)
	if err != nil {
		fatalf("%v", err)
	}

	builder, err := cfg.Builder()
	if err != nil {
		fatalf("invalid graph settings: %v", err)
	}
	builder.Grouper.Log = log

	return env{cfg: cfg, log: log, builder: builder}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "php":
		return true
	}
	return false
}

// writeSet prints a graph set in the requested format.
func writeSet(w io.Writer, set *graph.Set, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(set)
	case "php":
		return writePHP(w, set)
	default:
		return writeText(w, set)
	}
}

func writeText(w io.Writer, set *graph.Set) error {
	for i, key := range set.Order {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%s]\nds_name: %s\nopt:     %s\ndef:     %s\n",
			key, set.DSName[key], set.Opt[key], set.Def[key]); err != nil {
			return err
		}
	}
	return nil
}

// writePHP emits the three template arrays a PNP4Nagios template assigns.
func writePHP(w io.Writer, set *graph.Set) error {
	if _, err := fmt.Fprintln(w, "<?php"); err != nil {
		return err
	}
	for _, key := range set.Order {
		k := phpQuote(key)
		if _, err := fmt.Fprintf(w, "$ds_name[%s] = %s;\n$opt[%s] = %s;\n$def[%s] = %s;\n",
			k, phpQuote(set.DSName[key]),
			k, phpQuote(set.Opt[key]),
			k, phpQuote(set.Def[key])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "?>")
	return err
}

var phpEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func phpQuote(s string) string {
	return "'" + phpEscaper.Replace(s) + "'"
}
