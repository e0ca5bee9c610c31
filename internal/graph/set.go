package graph

import "encoding/json"

// Set holds the graphs for every interface, in the three mappings the host
// renderer consumes, plus the order interfaces were first seen in.
type Set struct {
	Order  []string
	DSName map[string]string
	Opt    map[string]string
	Def    map[string]string
	Specs  []Spec
}

func newSet() *Set {
	return &Set{
		DSName: make(map[string]string),
		Opt:    make(map[string]string),
		Def:    make(map[string]string),
	}
}

func (s *Set) add(spec Spec) {
	s.Order = append(s.Order, spec.Key)
	s.DSName[spec.Key] = spec.DisplayName
	s.Opt[spec.Key] = spec.Options
	s.Def[spec.Key] = spec.Definition()
	s.Specs = append(s.Specs, spec)
}

// Len returns the number of graphs.
func (s *Set) Len() int {
	return len(s.Order)
}

// MarshalJSON writes the host mappings under the names the host uses.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Order  []string          `json:"order"`
		DSName map[string]string `json:"ds_name"`
		Opt    map[string]string `json:"opt"`
		Def    map[string]string `json:"def"`
	}{s.Order, s.DSName, s.Opt, s.Def})
}

// Builder runs the grouping pass followed by one emit per interface.
type Builder struct {
	Grouper Grouper
	Style   Style
}

// NewBuilder returns a Builder with the default separator, duplicate policy
// and style.
func NewBuilder() Builder {
	return Builder{Style: DefaultStyle()}
}

// Build groups records and emits one graph per interface. host is the
// display name used in graph titles.
func (b Builder) Build(records []Record, host string) (*Set, error) {
	groups, err := b.Grouper.Group(records)
	if err != nil {
		return nil, err
	}
	em := Emitter{Style: b.Style, Host: host}
	set := newSet()
	for _, g := range groups.All() {
		set.add(em.Emit(g))
	}
	return set, nil
}

// Build uses the default builder. It cannot fail.
func Build(records []Record, host string) *Set {
	set, _ := NewBuilder().Build(records, host)
	return set
}
