package snmp

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/tonhe/ifgraph/internal/graph"
	"github.com/tonhe/ifgraph/internal/identity"
)

// fakeWalker answers BulkWalk from canned column values keyed by ifIndex.
type fakeWalker struct {
	columns map[string]map[int]gosnmp.SnmpPDU
	fail    map[string]bool
}

func (f fakeWalker) BulkWalk(root string, fn gosnmp.WalkFunc) error {
	if f.fail[root] {
		return errors.New("request timeout")
	}
	for idx, pdu := range f.columns[root] {
		pdu.Name = "." + root + "." + strconv.Itoa(idx)
		if err := fn(pdu); err != nil {
			return err
		}
	}
	return nil
}

func str(s string) gosnmp.SnmpPDU {
	return gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte(s)}
}

func num(n int) gosnmp.SnmpPDU {
	return gosnmp.SnmpPDU{Type: gosnmp.Integer, Value: n}
}

func testWalker() fakeWalker {
	return fakeWalker{columns: map[string]map[int]gosnmp.SnmpPDU{
		OIDifName:       {2: str("eth1"), 1: str("eth0")},
		OIDifDescr:      {1: str("Intel eth0"), 2: str("Intel eth1"), 3: str("lo")},
		OIDifAlias:      {1: str("uplink")},
		OIDifHighSpeed:  {1: num(1000), 2: num(100)},
		OIDifOperStatus: {1: num(1), 2: num(2), 3: num(1)},
	}}
}

func TestWalkInterfaces(t *testing.T) {
	ifaces, err := WalkInterfaces(testWalker(), nil)
	if err != nil {
		t.Fatalf("WalkInterfaces() error: %v", err)
	}
	if len(ifaces) != 3 {
		t.Fatalf("expected 3 interfaces, got %d", len(ifaces))
	}
	if ifaces[0].Name != "eth0" || ifaces[0].Alias != "uplink" || ifaces[0].Speed != 1000 || ifaces[0].Status != "up" {
		t.Errorf("unexpected eth0: %+v", ifaces[0])
	}
	if ifaces[1].Status != "down" {
		t.Errorf("expected eth1 down, got %q", ifaces[1].Status)
	}
	// No ifName for index 3, falls back to ifDescr.
	if ifaces[2].Name != "lo" {
		t.Errorf("expected ifDescr fallback 'lo', got %q", ifaces[2].Name)
	}
}

func TestWalkInterfacesOptionalColumnFailure(t *testing.T) {
	w := testWalker()
	w.fail = map[string]bool{OIDifAlias: true}
	ifaces, err := WalkInterfaces(w, nil)
	if err != nil {
		t.Fatalf("WalkInterfaces() error: %v", err)
	}
	if ifaces[0].Alias != "" {
		t.Errorf("expected empty alias, got %q", ifaces[0].Alias)
	}
}

func TestWalkInterfacesNameFailure(t *testing.T) {
	w := testWalker()
	w.fail = map[string]bool{OIDifName: true}
	if _, err := WalkInterfaces(w, nil); err == nil {
		t.Error("expected error when ifName walk fails")
	}
}

func TestFilter(t *testing.T) {
	ifaces := []Interface{{Name: "eth0"}, {Name: "eth1"}, {Name: "lo"}, {Name: "Gi0/1"}}

	got, err := Filter(ifaces, nil)
	if err != nil || len(got) != 4 {
		t.Errorf("expected all interfaces without patterns, got %d (%v)", len(got), err)
	}
	got, err = Filter(ifaces, []string{"eth*", "Gi0/1"})
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(got) != 3 || got[2].Name != "Gi0/1" {
		t.Errorf("unexpected filter result: %+v", got)
	}
	got, err = Filter(ifaces, []string{"{eth0,lo}"})
	if err != nil || len(got) != 2 {
		t.Errorf("expected alternation to match 2 interfaces, got %+v (%v)", got, err)
	}
}

func TestFilterBadPattern(t *testing.T) {
	_, err := Filter([]Interface{{Name: "eth0"}}, []string{"eth[0"})
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if !strings.Contains(err.Error(), "eth[0") {
		t.Errorf("expected error to name the pattern, got %v", err)
	}
}

func TestRecordsUseSeparator(t *testing.T) {
	records := Records([]Interface{{Name: "eth0"}}, "_", "/pnp", "web01", "Traffic")
	if records[0].Name != "in_eth0" || records[1].Name != "out_eth0" {
		t.Fatalf("unexpected record names: %+v", records)
	}

	b := graph.NewBuilder()
	b.Grouper.Separator = "_"
	set, err := b.Build(records, "web01")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if set.Len() != 1 || set.Order[0] != "eth0-bytes" {
		t.Errorf("expected one eth0 graph, got %v", set.Order)
	}
}

func TestRecords(t *testing.T) {
	records := Records([]Interface{{Name: "eth0"}, {Name: "eth1"}}, "", "/pnp", "web01", "Traffic")
	file := filepath.Join("/pnp", "web01", "Traffic.rrd")
	want := []graph.Record{
		{Name: "in-eth0", RRDFile: file, DS: "1"},
		{Name: "out-eth0", RRDFile: file, DS: "2"},
		{Name: "in-eth1", RRDFile: file, DS: "3"},
		{Name: "out-eth1", RRDFile: file, DS: "4"},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], records[i])
		}
	}

	set := graph.Build(records, "web01")
	if set.Len() != 2 {
		t.Errorf("expected 2 graphs, got %d", set.Len())
	}
}

func TestNewClientVersions(t *testing.T) {
	v2, err := NewClient(context.Background(), "10.0.0.1", 0, &identity.Identity{Version: "2c", Community: "public"}, 0)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	if v2.Port != DefaultPort || v2.Version != gosnmp.Version2c || v2.Community != "public" {
		t.Errorf("unexpected v2c client: %+v", v2)
	}

	v3, err := NewClient(context.Background(), "10.0.0.1", 1161, &identity.Identity{
		Version: "3", Username: "mon", AuthProto: "sha", AuthPass: "a", PrivProto: "AES256", PrivPass: "p",
	}, 0)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	if v3.MsgFlags != gosnmp.AuthPriv {
		t.Errorf("expected AuthPriv, got %v", v3.MsgFlags)
	}
	usm := v3.SecurityParameters.(*gosnmp.UsmSecurityParameters)
	if usm.AuthenticationProtocol != gosnmp.SHA || usm.PrivacyProtocol != gosnmp.AES256 {
		t.Errorf("unexpected USM params: %+v", usm)
	}

	if _, err := NewClient(context.Background(), "10.0.0.1", 0, &identity.Identity{Version: "4"}, 0); err == nil {
		t.Error("expected error for unsupported version")
	}
}
