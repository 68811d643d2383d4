package hilite

import (
	"fmt"

	"github.com/fatih/color"
)

// Palette maps every class to the SGR attribute its segments are drawn with.
type Palette map[Class]color.Attribute

var DefaultPalette = Palette{
	Comment:    color.FgCyan,
	String:     color.FgGreen,
	Keyword:    color.FgYellow,
	Operator:   color.FgBlue,
	Identifier: color.FgMagenta,
	Number:     color.FgWhite,
	Delimiter:  color.FgRed,
	Error:      color.BgRed,
}

// ResetMarker ends every colored segment.
var ResetMarker = marker(color.Reset)

func marker(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// Marker returns the escape sequence that starts a segment of class c.
func (p Palette) Marker(c Class) string {
	return marker(p.color(c))
}

func (p Palette) color(c Class) color.Attribute {
	if attr, ok := p[c]; ok {
		return attr
	}
	return DefaultPalette[Error]
}

// Segment is a Match resolved to the color it is rendered with. End is
// inclusive.
type Segment struct {
	Start int
	End   int
	Color color.Attribute
}

// Segments maps each match to one segment, preserving order.
func Segments(matches []Match, p Palette) []Segment {
	segs := make([]Segment, 0, len(matches))
	for _, m := range matches {
		segs = append(segs, Segment{
			Start: m.Start,
			End:   m.End,
			Color: p.color(m.Class),
		})
	}
	return segs
}
