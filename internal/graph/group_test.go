package graph

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{Name: "in-eth0", RRDFile: "/rrd/host/Traffic.rrd", DS: "1"},
		{Name: "out-eth0", RRDFile: "/rrd/host/Traffic.rrd", DS: "2"},
		{Name: "in-eth1", RRDFile: "/rrd/host/Traffic.rrd", DS: "3"},
	}
}

func TestGroupByInterface(t *testing.T) {
	groups := Group(sampleRecords())

	require.Equal(t, 2, groups.Len())
	assert.Equal(t, []string{"eth0", "eth1"}, groups.Names())

	eth0, ok := groups.Get("eth0")
	require.True(t, ok)
	assert.True(t, eth0.Has(In))
	assert.True(t, eth0.Has(Out))

	eth1, ok := groups.Get("eth1")
	require.True(t, ok)
	assert.True(t, eth1.Has(In))
	assert.False(t, eth1.Has(Out))

	rec, _ := eth0.Get(Out)
	assert.Equal(t, "2", rec.DS)
}

func TestGroupSkipsNamesWithoutSeparator(t *testing.T) {
	records := append(sampleRecords(),
		Record{Name: "uptime", DS: "4"},
		Record{Name: "eth2", DS: "5"},
	)
	groups := Group(records)

	assert.Equal(t, []string{"eth0", "eth1"}, groups.Names())
	_, ok := groups.Get("uptime")
	assert.False(t, ok)
	_, ok = groups.Get("eth2")
	assert.False(t, ok)
}

func TestGroupSplitsOnce(t *testing.T) {
	groups := Group([]Record{
		{Name: "in-br-lan", DS: "1"},
		{Name: "out-br-lan", DS: "2"},
	})

	require.Equal(t, []string{"br-lan"}, groups.Names())
	g, _ := groups.Get("br-lan")
	assert.True(t, g.Has(In))
	assert.True(t, g.Has(Out))
}

func TestGroupCustomSeparator(t *testing.T) {
	groups, err := Grouper{Separator: "_"}.Group([]Record{
		{Name: "in_eth0", DS: "1"},
		{Name: "in-eth1", DS: "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"eth0"}, groups.Names())
}

func TestGroupKeepsUnknownKinds(t *testing.T) {
	groups := Group([]Record{{Name: "errors-eth0", DS: "1"}})

	g, ok := groups.Get("eth0")
	require.True(t, ok)
	assert.True(t, g.Has(Direction("errors")))
	assert.False(t, g.Has(In))
	assert.False(t, g.Has(Out))
}

func TestGroupDuplicatePolicies(t *testing.T) {
	records := []Record{
		{Name: "in-eth0", DS: "1"},
		{Name: "in-eth0", DS: "9"},
	}

	last := Group(records)
	g, _ := last.Get("eth0")
	rec, _ := g.Get(In)
	assert.Equal(t, "9", rec.DS)

	first, err := Grouper{Duplicates: KeepFirst}.Group(records)
	require.NoError(t, err)
	g, _ = first.Get("eth0")
	rec, _ = g.Get(In)
	assert.Equal(t, "1", rec.DS)

	_, err = Grouper{Duplicates: RejectDuplicates}.Group(records)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestGroupLogsDuplicates(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	_, err := Grouper{Log: log}.Group([]Record{
		{Name: "out-eth0", DS: "1"},
		{Name: "out-eth0", DS: "2"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Replacing duplicate data source")
	assert.Contains(t, buf.String(), "interface=eth0")
}

func TestParseDuplicatePolicy(t *testing.T) {
	cases := map[string]DuplicatePolicy{
		"":       KeepLast,
		"last":   KeepLast,
		"First":  KeepFirst,
		"reject": RejectDuplicates,
	}
	for in, want := range cases {
		got, err := ParseDuplicatePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDuplicatePolicy("newest")
	assert.Error(t, err)
}

func TestSplitName(t *testing.T) {
	kind, iface, ok := SplitName("out-Gi0/1", "")
	require.True(t, ok)
	assert.Equal(t, Out, kind)
	assert.Equal(t, "Gi0/1", iface)

	_, _, ok = SplitName("nosep", "-")
	assert.False(t, ok)
}
