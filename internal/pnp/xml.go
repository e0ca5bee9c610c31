// Package pnp reads the data sources a PNP4Nagios host hands to graph
// templates: its per-service XML files and the plugin perfdata they are
// built from.
package pnp

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tonhe/ifgraph/internal/graph"
)

// ErrNoDatasource is returned for XML files without any DATASOURCE element.
var ErrNoDatasource = errors.New("no datasource found")

// Datasource is one DATASOURCE element of a PNP4Nagios service XML file.
type Datasource struct {
	Template string `xml:"TEMPLATE"`
	RRDFile  string `xml:"RRDFILE"`
	Storage  string `xml:"RRD_STORAGE_TYPE"`
	DS       string `xml:"DS"`
	Name     string `xml:"NAME"`
	Label    string `xml:"LABEL"`
	Unit     string `xml:"UNIT"`
	Act      string `xml:"ACT"`
	Warn     string `xml:"WARN"`
	Crit     string `xml:"CRIT"`
	Min      string `xml:"MIN"`
	Max      string `xml:"MAX"`
}

// Record converts the datasource into a graph record.
func (d Datasource) Record() graph.Record {
	return graph.Record{
		Name:    strings.TrimSpace(d.Name),
		RRDFile: strings.TrimSpace(d.RRDFile),
		DS:      strings.TrimSpace(d.DS),
	}
}

type serviceXML struct {
	XMLName         xml.Name     `xml:"NAGIOS"`
	Datasources     []Datasource `xml:"DATASOURCE"`
	Hostname        string       `xml:"NAGIOS_HOSTNAME"`
	DispHostname    string       `xml:"NAGIOS_DISP_HOSTNAME"`
	ServiceDesc     string       `xml:"NAGIOS_SERVICEDESC"`
	DispServiceDesc string       `xml:"NAGIOS_DISP_SERVICEDESC"`
}

// Source is everything a graph template gets from the host for one service.
type Source struct {
	Host        string
	DisplayHost string
	Service     string
	Datasources []Datasource
}

// Records returns the graph records in file order.
func (s *Source) Records() []graph.Record {
	out := make([]graph.Record, 0, len(s.Datasources))
	for _, d := range s.Datasources {
		out = append(out, d.Record())
	}
	return out
}

// Title returns the display host name, falling back to the host name.
func (s *Source) Title() string {
	if s.DisplayHost != "" {
		return s.DisplayHost
	}
	return s.Host
}

// Parse decodes a PNP4Nagios service XML document.
func Parse(r io.Reader) (*Source, error) {
	var doc serviceXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode pnp xml: %w", err)
	}
	if len(doc.Datasources) == 0 {
		return nil, ErrNoDatasource
	}
	service := strings.TrimSpace(doc.DispServiceDesc)
	if service == "" {
		service = strings.TrimSpace(doc.ServiceDesc)
	}
	return &Source{
		Host:        strings.TrimSpace(doc.Hostname),
		DisplayHost: strings.TrimSpace(doc.DispHostname),
		Service:     service,
		Datasources: doc.Datasources,
	}, nil
}

// Load reads a PNP4Nagios service XML file.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
