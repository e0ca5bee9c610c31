package pnp

import (
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/tonhe/ifgraph/internal/graph"
)

// Metric is one label=value[;warn;crit;min;max] perfdata entry. Thresholds
// that were left empty are kept as empty strings. An unknown value ("U") is
// NaN.
type Metric struct {
	Label string
	Value float64
	Unit  string
	Warn  string
	Crit  string
	Min   string
	Max   string
}

// perfdataEntry matches label=value with an optional quoted label.
var perfdataEntry = regexp.MustCompile(`('[^']+'|[^\s=]+)=(\S+)`)

var numericPrefix = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)

// ParsePerfdata parses plugin output. On the first line, anything before '|'
// is the human readable status; a single line without '|' is taken to be
// perfdata only. Later lines are long output, except for the text after the
// first '|' among them, which continues the perfdata.
func ParsePerfdata(output string) ([]Metric, error) {
	var metrics []Metric
	for _, m := range perfdataEntry.FindAllStringSubmatch(perfdataText(output), -1) {
		label := strings.Trim(m[1], "'")
		fields := strings.Split(m[2], ";")

		metric := Metric{Label: label}
		thresholds := []*string{&metric.Warn, &metric.Crit, &metric.Min, &metric.Max}
		for i, dst := range thresholds {
			if i+1 < len(fields) {
				*dst = fields[i+1]
			}
		}
		if fields[0] == "U" {
			metric.Value = math.NaN()
			metrics = append(metrics, metric)
			continue
		}

		num := numericPrefix.FindString(fields[0])
		if num == "" {
			return nil, fmt.Errorf("perfdata %q: invalid value %q", label, fields[0])
		}
		value, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, fmt.Errorf("perfdata %q: %w", label, err)
		}

		metric.Value = value
		metric.Unit = fields[0][len(num):]
		metrics = append(metrics, metric)
	}
	return metrics, nil
}

func perfdataText(output string) string {
	first, rest, multiline := strings.Cut(output, "\n")
	perf := first
	if _, after, found := strings.Cut(first, "|"); found {
		perf = after
	} else if multiline {
		perf = ""
	}
	if _, after, found := strings.Cut(rest, "|"); found {
		perf += " " + after
	}
	return perf
}

// RRDPath is where PNP4Nagios keeps a service's RRD file with single-file
// storage. Characters PNP replaces in file names are replaced the same way.
func RRDPath(rrdDir, host, service string) string {
	return filepath.Join(rrdDir, sanitize(host), sanitize(service)+".rrd")
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, s)
}

// PerfdataRecords maps metrics to records the way PNP4Nagios stores them:
// one RRD file per service, DS numbered from 1 in perfdata order.
func PerfdataRecords(metrics []Metric, rrdDir, host, service string) []graph.Record {
	file := RRDPath(rrdDir, host, service)
	out := make([]graph.Record, 0, len(metrics))
	for i, m := range metrics {
		out = append(out, graph.Record{
			Name:    m.Label,
			RRDFile: file,
			DS:      strconv.Itoa(i + 1),
		})
	}
	return out
}
