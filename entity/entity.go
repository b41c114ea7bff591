// Package entity holds the basic drawing primitives a dimension line is built
// from (lines, circles, solids, text, block inserts) and their tag encoding
// in the old R12 dxf format.
package entity

import (
	"fmt"
	"io"

	"github.com/go-spatial/geom"
)

// Horizontal text justification (group code 72).
const (
	HAlignLeft = iota
	HAlignCenter
	HAlignRight
)

// Vertical text justification (group code 73).
const (
	VAlignBaseline = iota
	VAlignBottom
	VAlignMiddle
	VAlignTop
)

// Entity is a drawing primitive that can write itself as dxf tags.
type Entity interface {
	Encode(w io.Writer) error
}

// List is an append-only ordered collection of entities. Relative order is
// the emission order and determines rendering layering.
type List []Entity

// Append adds entities at the end of the list.
func (l *List) Append(entities ...Entity) {
	*l = append(*l, entities...)
}

// Encode writes all entities in order.
func (l List) Encode(w io.Writer) error {
	for _, e := range l {
		if err := e.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Line is a straight segment between two points.
type Line struct {
	Start geom.Point
	End   geom.Point
	Color int
	Layer string
}

func (l Line) Encode(w io.Writer) error {
	t := tagWriter{w: w}
	t.tag(0, "LINE")
	t.tag(8, l.Layer)
	t.tag(62, l.Color)
	t.point(0, l.Start)
	t.point(1, l.End)
	return t.err
}

// Circle is a full circle around a center point.
type Circle struct {
	Center geom.Point
	Radius float64
	Color  int
	Layer  string
}

func (c Circle) Encode(w io.Writer) error {
	t := tagWriter{w: w}
	t.tag(0, "CIRCLE")
	t.tag(8, c.Layer)
	t.tag(62, c.Color)
	t.point(0, c.Center)
	t.tag(40, c.Radius)
	return t.err
}

// Solid is a filled area with three or four corner points.
type Solid struct {
	Vertices []geom.Point
	Color    int
	Layer    string
}

func (s Solid) Encode(w io.Writer) error {
	if len(s.Vertices) < 3 || len(s.Vertices) > 4 {
		return fmt.Errorf("entity: solid needs 3 or 4 vertices, got %d", len(s.Vertices))
	}
	t := tagWriter{w: w}
	t.tag(0, "SOLID")
	t.tag(8, s.Layer)
	t.tag(62, s.Color)
	for i := 0; i < 4; i++ {
		// a triangle repeats its last vertex
		j := i
		if j >= len(s.Vertices) {
			j = len(s.Vertices) - 1
		}
		t.point(i, s.Vertices[j])
	}
	return t.err
}

// Text is a single line text label.
type Text struct {
	Value    string
	Insert   geom.Point
	Height   float64
	Rotation float64 // degrees
	HAlign   int
	VAlign   int
	Style    string
	Color    int
	Layer    string
	// AlignPoint is the second alignment point, required for any alignment
	// other than left/baseline.
	AlignPoint *geom.Point
}

func (x Text) Encode(w io.Writer) error {
	t := tagWriter{w: w}
	t.tag(0, "TEXT")
	t.tag(8, x.Layer)
	t.tag(62, x.Color)
	t.point(0, x.Insert)
	t.tag(40, x.Height)
	t.tag(1, x.Value)
	t.tag(50, x.Rotation)
	t.tag(7, x.Style)
	t.tag(72, x.HAlign)
	t.tag(73, x.VAlign)
	if x.AlignPoint != nil {
		t.point(1, *x.AlignPoint)
	}
	return t.err
}

// Insert places a block reference.
type Insert struct {
	Block    string
	Point    geom.Point
	Rotation float64 // degrees
	XScale   float64
	YScale   float64
	Layer    string
}

func (i Insert) Encode(w io.Writer) error {
	t := tagWriter{w: w}
	t.tag(0, "INSERT")
	t.tag(8, i.Layer)
	t.tag(2, i.Block)
	t.point(0, i.Point)
	t.tag(41, i.XScale)
	t.tag(42, i.YScale)
	t.tag(50, i.Rotation)
	return t.err
}
