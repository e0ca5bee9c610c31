package snmp

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/gosnmp/gosnmp"
	"github.com/sirupsen/logrus"
	"github.com/tonhe/ifgraph/internal/graph"
	"github.com/tonhe/ifgraph/internal/identity"
	"github.com/tonhe/ifgraph/internal/logging"
	"github.com/tonhe/ifgraph/internal/pnp"
)

// Interface is one row of the device's interface table.
type Interface struct {
	IfIndex     int
	Name        string
	Description string
	Alias       string
	Speed       uint64 // Mbps
	Status      string
}

// Walker is the part of gosnmp.GoSNMP discovery needs.
type Walker interface {
	BulkWalk(rootOid string, walkFn gosnmp.WalkFunc) error
}

// DiscoverInterfaces connects to host and reads its interface table.
func DiscoverInterfaces(ctx context.Context, host string, port int, id *identity.Identity, timeout time.Duration, log logrus.FieldLogger) ([]Interface, error) {
	client, err := NewClient(ctx, host, port, id, timeout)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", host, err)
	}
	defer client.Conn.Close()

	return WalkInterfaces(client, logging.OrDiscard(log).WithField("host", host))
}

// WalkInterfaces reads ifName, ifDescr, ifAlias, ifHighSpeed and
// ifOperStatus. Interfaces without ifName fall back to ifDescr. The result is
// sorted by ifIndex.
func WalkInterfaces(w Walker, log logrus.FieldLogger) ([]Interface, error) {
	log = logging.OrDiscard(log)
	byIndex := make(map[int]*Interface)
	get := func(idx int) *Interface {
		iface, ok := byIndex[idx]
		if !ok {
			iface = &Interface{IfIndex: idx}
			byIndex[idx] = iface
		}
		return iface
	}

	if err := walkColumn(w, OIDifName, func(idx int, val string) {
		get(idx).Name = val
	}); err != nil {
		return nil, fmt.Errorf("walk ifName: %w", err)
	}

	columns := []struct {
		oid     string
		handler func(int, string)
	}{
		{OIDifDescr, func(idx int, val string) {
			iface := get(idx)
			iface.Description = val
			if iface.Name == "" {
				iface.Name = val
			}
		}},
		{OIDifAlias, func(idx int, val string) {
			if iface, ok := byIndex[idx]; ok {
				iface.Alias = val
			}
		}},
		{OIDifHighSpeed, func(idx int, val string) {
			if iface, ok := byIndex[idx]; ok {
				iface.Speed, _ = strconv.ParseUint(val, 10, 64)
			}
		}},
		{OIDifOperStatus, func(idx int, val string) {
			if iface, ok := byIndex[idx]; ok {
				iface.Status = operStatus(val)
			}
		}},
	}
	for _, col := range columns {
		if err := walkColumn(w, col.oid, col.handler); err != nil {
			log.WithError(err).WithField("oid", col.oid).Warn("Interface column walk failed")
		}
	}

	result := make([]Interface, 0, len(byIndex))
	for _, iface := range byIndex {
		result = append(result, *iface)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IfIndex < result[j].IfIndex })
	log.WithField("interfaces", len(result)).Debug("Discovered interfaces")
	return result, nil
}

func operStatus(val string) string {
	switch val {
	case "1":
		return "up"
	case "2":
		return "down"
	case "3":
		return "testing"
	default:
		return "unknown"
	}
}

// walkColumn bulk-walks a table column and calls handler with the ifIndex
// taken from the last OID component.
func walkColumn(w Walker, oid string, handler func(int, string)) error {
	return w.BulkWalk(oid, func(pdu gosnmp.SnmpPDU) error {
		idx, err := strconv.Atoi(pdu.Name[strings.LastIndex(pdu.Name, ".")+1:])
		if err != nil {
			return nil
		}
		handler(idx, pduString(pdu))
		return nil
	})
}

// Filter keeps the interfaces whose name matches one of the glob patterns.
// No patterns keeps everything. A malformed pattern is an error.
func Filter(ifaces []Interface, patterns []string) ([]Interface, error) {
	if len(patterns) == 0 {
		return ifaces, nil
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("interface pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}

	var out []Interface
	for _, iface := range ifaces {
		for _, g := range globs {
			if g.Match(iface.Name) {
				out = append(out, iface)
				break
			}
		}
	}
	return out, nil
}

// Records lays the interfaces out the way the traffic plugin reports them:
// "in<sep><name>" and "out<sep><name>" per interface, stored by PNP4Nagios in
// one RRD file per service. An empty sep means graph.DefaultSeparator.
func Records(ifaces []Interface, sep, rrdDir, host, service string) []graph.Record {
	if sep == "" {
		sep = graph.DefaultSeparator
	}
	metrics := make([]pnp.Metric, 0, 2*len(ifaces))
	for _, iface := range ifaces {
		metrics = append(metrics,
			pnp.Metric{Label: string(graph.In) + sep + iface.Name},
			pnp.Metric{Label: string(graph.Out) + sep + iface.Name},
		)
	}
	return pnp.PerfdataRecords(metrics, rrdDir, host, service)
}
