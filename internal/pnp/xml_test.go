package pnp

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonhe/ifgraph/internal/graph"
)

func TestLoad(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "Traffic.xml"))
	require.NoError(t, err)

	assert.Equal(t, "web01", src.Host)
	assert.Equal(t, "web01.example.net", src.DisplayHost)
	assert.Equal(t, "web01.example.net", src.Title())
	assert.Equal(t, "Traffic", src.Service)
	require.Len(t, src.Datasources, 3)
	assert.Equal(t, "12500000", src.Datasources[0].Max)

	assert.Equal(t, []graph.Record{
		{Name: "in-eth0", RRDFile: "/var/lib/pnp4nagios/perfdata/web01/Traffic.rrd", DS: "1"},
		{Name: "out-eth0", RRDFile: "/var/lib/pnp4nagios/perfdata/web01/Traffic.rrd", DS: "2"},
		{Name: "in-eth1", RRDFile: "/var/lib/pnp4nagios/perfdata/web01/Traffic.rrd", DS: "3"},
	}, src.Records())
}

func TestLoadBuildsGraphs(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "Traffic.xml"))
	require.NoError(t, err)

	set := graph.Build(src.Records(), src.Title())
	assert.Equal(t, []string{"eth0-bytes", "eth1-bytes"}, set.Order)
	assert.Contains(t, set.Opt["eth0-bytes"], `"web01.example.net / eth0 Bytes"`)
}

func TestParseTitleFallsBackToHostname(t *testing.T) {
	src, err := Parse(strings.NewReader(`<NAGIOS>
		<DATASOURCE><DS>1</DS><NAME>out-eth0</NAME><RRDFILE>/x.rrd</RRDFILE></DATASOURCE>
		<NAGIOS_HOSTNAME>db02</NAGIOS_HOSTNAME>
		<NAGIOS_SERVICEDESC>Net</NAGIOS_SERVICEDESC>
	</NAGIOS>`))
	require.NoError(t, err)
	assert.Equal(t, "db02", src.Title())
	assert.Equal(t, "Net", src.Service)
}

func TestParseNoDatasource(t *testing.T) {
	_, err := Parse(strings.NewReader(`<NAGIOS><NAGIOS_HOSTNAME>x</NAGIOS_HOSTNAME></NAGIOS>`))
	assert.True(t, errors.Is(err, ErrNoDatasource))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`<NAGIOS><DATASOURCE>`))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
