package graph

import "fmt"

// Variable names bound by the emitted DEF/CDEF directives.
const (
	VarOut   = "out"
	VarPosIn = "posin"
	VarIn    = "in"
)

// DefaultHeader labels the three summary columns printed under the graph.
const DefaultHeader = "             Max           Avg          Last"

// Style carries every presentational choice of an emitted graph. Aggregates
// are the consolidation functions summarised per series, in legend order.
// VerticalLabel is also the last word of the graph title, so changing it
// from "Bytes" changes the title too.
type Style struct {
	VerticalLabel string
	Consolidation string
	InColor       string
	OutColor      string
	InLabel       string
	OutLabel      string
	LabelFormat   string
	Header        string
	Aggregates    []string
}

// DefaultStyle is the classic PNP4Nagios traffic template look.
func DefaultStyle() Style {
	return Style{
		VerticalLabel: "Bytes",
		Consolidation: "AVERAGE",
		InColor:       "#008800",
		OutColor:      "#00cc00",
		InLabel:       "In   ",
		OutLabel:      "Out  ",
		LabelFormat:   "%6.1lf %SB/s",
		Header:        DefaultHeader,
		Aggregates:    []string{"MAX", "AVERAGE", "LAST"},
	}
}

// Spec is the graph generated for one interface. Directions lists the
// traffic directions drawn, inbound first.
type Spec struct {
	Key         string      `json:"key"`
	Interface   string      `json:"interface"`
	DisplayName string      `json:"ds_name"`
	Options     string      `json:"opt"`
	Directions  []Direction `json:"directions"`
	Directives  []Directive `json:"-"`
}

// Definition renders the directives of the spec.
func (s Spec) Definition() string {
	return Render(s.Directives)
}

// SpecKey is the per-interface key the host uses for all three mappings.
func SpecKey(iface string) string {
	return iface + "-bytes"
}

// Emitter turns interface groups into graph specs. Host is the display name
// used in titles.
type Emitter struct {
	Style Style
	Host  string
}

// Emit builds the graph for one interface group.
func (e Emitter) Emit(g *InterfaceGroup) Spec {
	key := SpecKey(g.Name)
	return Spec{
		Key:         key,
		Interface:   g.Name,
		DisplayName: key,
		Options:     e.Options(g.Name),
		Directions:  directions(g),
		Directives:  e.Directives(g),
	}
}

// Options returns the title and axis arguments for an interface graph. The
// title ends with the vertical label.
func (e Emitter) Options(iface string) string {
	return fmt.Sprintf(`--vertical-label %s --title "%s / %s %s"`,
		e.Style.VerticalLabel, e.Host, iface, e.Style.VerticalLabel)
}

// Directives returns the ordered draw directives for an interface group.
// Inbound traffic is negated so it mirrors outbound traffic below the axis.
func (e Emitter) Directives(g *InterfaceGroup) []Directive {
	st := e.Style
	out, hasOut := g.Get(Out)
	in, hasIn := g.Get(In)

	var ds []Directive
	if hasOut {
		ds = append(ds, Def{VName: VarOut, RRDFile: out.RRDFile, DS: out.DS, CF: st.Consolidation})
	}
	if hasIn {
		ds = append(ds,
			Def{VName: VarPosIn, RRDFile: in.RRDFile, DS: in.DS, CF: st.Consolidation},
			CDef{VName: VarIn, RPN: VarPosIn + ",-1,*"},
		)
	}
	ds = append(ds, Comment{Text: st.Header, LineBreak: true})
	if hasIn {
		ds = append(ds, Area{VName: VarIn, Color: st.InColor, Legend: st.InLabel})
		ds = append(ds, labels(VarPosIn, st.Aggregates, st.LabelFormat)...)
	}
	if hasOut {
		ds = append(ds, Area{VName: VarOut, Color: st.OutColor, Legend: st.OutLabel})
		ds = append(ds, labels(VarOut, st.Aggregates, st.LabelFormat)...)
	}
	return ds
}

func directions(g *InterfaceGroup) []Direction {
	var ds []Direction
	for _, d := range []Direction{In, Out} {
		if g.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

// labels summarises vname once per aggregate. Only the last label breaks the
// legend line.
func labels(vname string, aggregates []string, format string) []Directive {
	ds := make([]Directive, 0, len(aggregates))
	for i, cf := range aggregates {
		ds = append(ds, GPrint{
			VName:     vname,
			CF:        cf,
			Format:    format,
			LineBreak: i == len(aggregates)-1,
		})
	}
	return ds
}
