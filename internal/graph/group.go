package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tonhe/ifgraph/internal/logging"
)

// DefaultSeparator splits "<direction>-<interface>" data-source names.
const DefaultSeparator = "-"

// ErrDuplicate is returned by a rejecting Grouper when two records resolve to
// the same interface and direction.
var ErrDuplicate = errors.New("duplicate direction for interface")

// DuplicatePolicy decides what happens when an interface receives a second
// record for a direction it already holds.
type DuplicatePolicy int

const (
	KeepLast DuplicatePolicy = iota
	KeepFirst
	RejectDuplicates
)

// ParseDuplicatePolicy maps the config values "last", "first" and "reject".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(s) {
	case "", "last":
		return KeepLast, nil
	case "first":
		return KeepFirst, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return KeepLast, fmt.Errorf("unknown duplicate policy %q", s)
	}
}

func (p DuplicatePolicy) String() string {
	switch p {
	case KeepFirst:
		return "first"
	case RejectDuplicates:
		return "reject"
	default:
		return "last"
	}
}

// InterfaceGroup holds the records of one interface, keyed by direction.
type InterfaceGroup struct {
	Name    string
	Records map[Direction]Record
}

// Get returns the record for direction d.
func (g *InterfaceGroup) Get(d Direction) (Record, bool) {
	r, ok := g.Records[d]
	return r, ok
}

// Has reports whether the group holds a record for direction d.
func (g *InterfaceGroup) Has(d Direction) bool {
	_, ok := g.Records[d]
	return ok
}

// Groups is the result of a grouping pass. Interfaces keep the order in
// which they were first seen.
type Groups struct {
	order  []string
	byName map[string]*InterfaceGroup
}

func newGroups() *Groups {
	return &Groups{byName: make(map[string]*InterfaceGroup)}
}

// Names returns interface names in first-seen order.
func (gs *Groups) Names() []string {
	out := make([]string, len(gs.order))
	copy(out, gs.order)
	return out
}

// Get returns the group for an interface name.
func (gs *Groups) Get(name string) (*InterfaceGroup, bool) {
	g, ok := gs.byName[name]
	return g, ok
}

// Len returns the number of interfaces.
func (gs *Groups) Len() int {
	return len(gs.order)
}

// All returns every group in first-seen order.
func (gs *Groups) All() []*InterfaceGroup {
	out := make([]*InterfaceGroup, 0, len(gs.order))
	for _, name := range gs.order {
		out = append(out, gs.byName[name])
	}
	return out
}

func (gs *Groups) group(name string) *InterfaceGroup {
	g, ok := gs.byName[name]
	if !ok {
		g = &InterfaceGroup{Name: name, Records: make(map[Direction]Record)}
		gs.byName[name] = g
		gs.order = append(gs.order, name)
	}
	return g
}

// Grouper buckets data-source records by interface name.
type Grouper struct {
	Separator  string
	Duplicates DuplicatePolicy
	Log        logrus.FieldLogger
}

// SplitName splits a data-source name once on sep into its kind and
// interface. ok is false when sep does not occur in name.
func SplitName(name, sep string) (kind Direction, iface string, ok bool) {
	if sep == "" {
		sep = DefaultSeparator
	}
	k, rest, found := strings.Cut(name, sep)
	if !found {
		return "", "", false
	}
	return Direction(k), rest, true
}

// Group builds the interface groups for records. Names without the
// separator are skipped. It only fails when the policy is RejectDuplicates.
func (g Grouper) Group(records []Record) (*Groups, error) {
	log := logging.OrDiscard(g.Log)
	groups := newGroups()

	for _, rec := range records {
		kind, iface, ok := SplitName(rec.Name, g.Separator)
		if !ok {
			log.WithField("name", rec.Name).Debug("Skipping data source without separator")
			continue
		}

		ig := groups.group(iface)
		if prev, exists := ig.Records[kind]; exists {
			fields := logrus.Fields{
				"interface": iface,
				"direction": string(kind),
				"previous":  prev.Name,
			}
			switch g.Duplicates {
			case RejectDuplicates:
				return nil, fmt.Errorf("%s %q: %w", kind, iface, ErrDuplicate)
			case KeepFirst:
				log.WithFields(fields).Warn("Ignoring duplicate data source")
				continue
			default:
				log.WithFields(fields).Warn("Replacing duplicate data source")
			}
		}
		ig.Records[kind] = rec
	}
	return groups, nil
}

// Group groups records with the default separator, keeping the last record
// on duplicate directions.
func Group(records []Record) *Groups {
	groups, _ := Grouper{}.Group(records)
	return groups
}
