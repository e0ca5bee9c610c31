package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		d    Directive
		want string
	}{
		{Def{VName: "out", RRDFile: "/x.rrd", DS: "2", CF: "AVERAGE"}, "DEF:out=/x.rrd:2:AVERAGE"},
		{CDef{VName: "in", RPN: "posin,-1,*"}, "CDEF:in=posin,-1,*"},
		{Comment{Text: "hello"}, `COMMENT:"hello"`},
		{Comment{Text: "hello", LineBreak: true}, `COMMENT:"hello\l"`},
		{Area{VName: "in", Color: "#008800", Legend: "In   "}, `AREA:in#008800:"In   "`},
		{GPrint{VName: "out", CF: "MAX", Format: "%6.1lf"}, `GPRINT:out:MAX:"%6.1lf "`},
		{GPrint{VName: "out", CF: "LAST", Format: "%6.1lf", LineBreak: true}, `GPRINT:out:LAST:"%6.1lf\l"`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.d))
	}
}

func TestRender(t *testing.T) {
	got := Render([]Directive{
		CDef{VName: "a", RPN: "b,2,*"},
		Comment{Text: "x"},
	})
	assert.Equal(t, `CDEF:a=b,2,* COMMENT:"x" `, got)
	assert.Equal(t, "", Render(nil))
}
