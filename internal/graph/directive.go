package graph

import "strings"

// Directive is one rrdtool graph instruction. Directives are plain values;
// Format turns them into rrdtool syntax.
type Directive interface {
	directive()
}

// Def fetches DS from an RRD file into VName using consolidation function CF.
type Def struct {
	VName   string
	RRDFile string
	DS      string
	CF      string
}

// CDef derives VName from an RPN expression.
type CDef struct {
	VName string
	RPN   string
}

// Comment prints free text in the legend.
type Comment struct {
	Text      string
	LineBreak bool
}

// Area draws VName as a filled area.
type Area struct {
	VName  string
	Color  string
	Legend string
}

// GPrint prints a consolidated value of VName in the legend.
type GPrint struct {
	VName     string
	CF        string
	Format    string
	LineBreak bool
}

func (Def) directive()     {}
func (CDef) directive()    {}
func (Comment) directive() {}
func (Area) directive()    {}
func (GPrint) directive()  {}

// lineBreak is the rrdtool legend marker that ends a left-aligned line.
const lineBreak = `\l`

// Format renders a single directive.
func Format(d Directive) string {
	switch d := d.(type) {
	case Def:
		return "DEF:" + d.VName + "=" + d.RRDFile + ":" + d.DS + ":" + d.CF
	case CDef:
		return "CDEF:" + d.VName + "=" + d.RPN
	case Comment:
		return `COMMENT:"` + d.Text + terminator(d.LineBreak, "") + `"`
	case Area:
		return "AREA:" + d.VName + d.Color + `:"` + d.Legend + `"`
	case GPrint:
		return "GPRINT:" + d.VName + ":" + d.CF + `:"` + d.Format + terminator(d.LineBreak, " ") + `"`
	default:
		return ""
	}
}

func terminator(lineBreakWanted bool, plain string) string {
	if lineBreakWanted {
		return lineBreak
	}
	return plain
}

// Render joins directives into a definition string. Every directive is
// followed by a single space, which is how host templates concatenate them.
func Render(ds []Directive) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(Format(d))
		b.WriteByte(' ')
	}
	return b.String()
}

// Lines renders directives one per line.
func Lines(ds []Directive) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, Format(d))
	}
	return out
}
