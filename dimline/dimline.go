// Package dimline builds simple 2D dimension lines from basic dxf entities,
// not the dxf DIMENSION entity.
//
// A DimensionLine dimensions two or more measure points along a declared
// direction: the points are projected perpendicularly onto the dimension
// ray, ordered left to right, and the package emits the dimension line
// itself, extension lines from the targets to their projections, a value
// text per section and a tick block at every point.
//
// DimensionAngle, DimensionArc and DimensionRadius reserve the API for the
// other dimensioning variants, their geometry is not implemented.
package dimline

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-spatial/geom"

	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/entity"
	"github.com/rossop/dxfwrite/geom2d"
	"github.com/rossop/dxfwrite/mathhelp"
)

// minExtLineDistance keeps extension lines away from target points that sit
// effectively on the dimension line already.
const minExtLineDistance = 0.05

// Dimension is one member of the dimensioning family. Entities renders the
// dimension on its first call and returns the emitted entity sequence;
// repeated calls return the same sequence without recomputing.
type Dimension interface {
	Entities() (entity.List, error)
}

// base carries what all dimension variants share: the resolved style, an
// optional per-instance layer override and the emitted entities.
type base struct {
	style    *dimstyle.DimStyle
	layer    string
	data     entity.List
	rendered bool
}

// layerName resolves the effective layer: instance override first, then the
// style's layer.
func (b *base) layerName() string {
	if b.layer != "" {
		return b.layer
	}
	return b.style.Layer
}

type config struct {
	styleName string
	layer     string
}

// Option configures a dimension at construction time.
type Option func(*config)

// WithStyle selects the named style from the registry instead of Default.
// Unknown names resolve to the Default style.
func WithStyle(name string) Option {
	return func(c *config) { c.styleName = name }
}

// WithLayer overrides the style's layer for this dimension object only.
func WithLayer(layer string) Option {
	return func(c *config) { c.layer = layer }
}

func newBase(registry *dimstyle.Registry, opts []Option) base {
	cfg := config{styleName: dimstyle.DefaultName}
	for _, opt := range opts {
		opt(&cfg)
	}
	return base{style: registry.Get(cfg.styleName), layer: cfg.layer}
}

// DimensionLine is a straight dimension line through two or more measure
// points. The line runs through pos at the given angle; every measure point
// is projected perpendicularly onto it.
type DimensionLine struct {
	base
	pos           geom.Point
	angle         float64 // degrees
	measurePoints []geom.Point
	textOverride  []string

	// derived during render
	dimlinePoints []geom.Point // projections, parallel to measurePoints
	pointOrder    []int        // index permutation, left to right
	parallel      geom2d.Vector
	normal        geom2d.Vector
}

// New constructs a dimension line through pos at angle (degrees) dimensioning
// the given measure points. Fails for fewer than two points.
func New(registry *dimstyle.Registry, pos geom.Point, measurePoints []geom.Point, angle float64, opts ...Option) (*DimensionLine, error) {
	if len(measurePoints) < 2 {
		return nil, fmt.Errorf("dimline: need at least 2 measure points, got %d", len(measurePoints))
	}
	points := make([]geom.Point, len(measurePoints))
	copy(points, measurePoints)
	return &DimensionLine{
		base:          newBase(registry, opts),
		pos:           pos,
		angle:         angle,
		measurePoints: points,
		textOverride:  make([]string, len(points)-1),
	}, nil
}

// PointCount is the number of measure points.
func (d *DimensionLine) PointCount() int { return len(d.measurePoints) }

// SectionCount is the number of spans between consecutive ordered points,
// always one fewer than the points.
func (d *DimensionLine) SectionCount() int { return len(d.measurePoints) - 1 }

// SetText overrides the value text of the given section. Must be called
// before Entities.
func (d *DimensionLine) SetText(section int, text string) error {
	if !mathhelp.BetweenInc(section, 0, d.SectionCount()-1) {
		return fmt.Errorf("dimline: section %d out of range [0,%d)", section, d.SectionCount())
	}
	d.textOverride[section] = text
	return nil
}

// Entities renders the dimension line on its first call and returns the
// entity sequence: the dimension line, then extension lines, then value
// texts, then ticks.
func (d *DimensionLine) Entities() (entity.List, error) {
	if d.rendered {
		return d.data, nil
	}
	if err := d.setup(); err != nil {
		return nil, err
	}
	d.drawDimline()
	if d.style.DimExtLine {
		d.drawExtensionLines()
	}
	d.drawText()
	d.drawTicks()
	d.rendered = true
	return d.data, nil
}

// setup projects the measure points onto the dimension ray, fixes the left to
// right draw order and derives the line's unit vectors.
func (d *DimensionLine) setup() error {
	dimRay := geom2d.RayFromAngle(d.pos, mathhelp.Radians(d.angle))
	d.dimlinePoints = make([]geom.Point, len(d.measurePoints))
	for i, p := range d.measurePoints {
		projection, err := dimRay.Intersect(dimRay.NormalThrough(p))
		if err != nil {
			return fmt.Errorf("dimline: projecting point %v onto dimension line: %w", p, err)
		}
		d.dimlinePoints[i] = projection
	}
	d.pointOrder = sortedPointIndices(d.dimlinePoints)
	return d.buildVectors()
}

// sortedPointIndices returns the index permutation ordering points by x, ties
// broken by y. Keeping a permutation leaves dimlinePoints parallel to
// measurePoints.
func sortedPointIndices(points []geom.Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		p, q := points[order[i]], points[order[j]]
		if p.X() != q.X() {
			return p.X() < q.X()
		}
		return p.Y() < q.Y()
	})
	return order
}

// buildVectors derives the unit vectors parallel and normal to the dimension
// line. The ordering fixes a canonical direction, so text always sits on the
// same side regardless of input point order.
func (d *DimensionLine) buildVectors() error {
	first := d.orderedPoint(0)
	last := d.orderedPoint(d.PointCount() - 1)
	parallel, err := geom2d.Sub(last, first).Unit()
	if err != nil {
		return fmt.Errorf("dimline: all measure points project onto %v, dimension line has zero length: %w", first, err)
	}
	d.parallel = parallel
	d.normal = parallel.Normal()
	return nil
}

// orderedPoint returns the i-th projected point in left to right order.
func (d *DimensionLine) orderedPoint(i int) geom.Point {
	return d.dimlinePoints[d.pointOrder[i]]
}

// sectionPoints returns the projected start and end point of a section.
func (d *DimensionLine) sectionPoints(section int) (geom.Point, geom.Point) {
	return d.orderedPoint(section), d.orderedPoint(section + 1)
}

func (d *DimensionLine) drawDimline() {
	start := d.orderedPoint(0)
	end := d.orderedPoint(d.PointCount() - 1)

	if ext := d.style.DimLineExt; ext > 0 {
		start = geom2d.Translate(start, d.parallel.Mul(-ext))
		end = geom2d.Translate(end, d.parallel.Mul(ext))
	}

	d.data.Append(entity.Line{
		Start: start,
		End:   end,
		Color: d.style.DimLineColor,
		Layer: d.layerName(),
	})
}

// drawExtensionLines connects each measure target to its projection, leaving
// the style's gap clear at the target. Targets within the gap (or the
// minimum distance floor) need no visible extension and are skipped.
func (d *DimensionLine) drawExtensionLines() {
	gap := d.style.DimExtLineGap
	for i, dimlinePoint := range d.dimlinePoints {
		target := d.measurePoints[i]
		if geom2d.Distance(dimlinePoint, target) <= math.Max(gap, minExtLineDistance) {
			continue
		}
		direction, _ := geom2d.Sub(target, dimlinePoint).Unit() // distance > 0 was checked above
		end := geom2d.Translate(target, direction.Mul(-gap))
		d.data.Append(entity.Line{
			Start: dimlinePoint,
			End:   end,
			Color: d.style.DimExtLineColor,
			Layer: d.layerName(),
		})
	}
}

func (d *DimensionLine) drawText() {
	for section := 0; section < d.SectionCount(); section++ {
		insert := d.textInsertPoint(section)
		d.data.Append(entity.Text{
			Value:      d.sectionText(section),
			Insert:     insert,
			Height:     d.style.Height,
			Rotation:   d.angle,
			HAlign:     entity.HAlignCenter,
			VAlign:     entity.VAlignMiddle,
			Style:      d.style.TextStyle,
			Color:      d.style.TextColor,
			Layer:      d.layerName(),
			AlignPoint: &insert,
		})
	}
}

// sectionText is the caller's override if one was set, otherwise the
// formatted distance between the section's original measure points (not
// their projections).
func (d *DimensionLine) sectionText(section int) string {
	if override := d.textOverride[section]; override != "" {
		return override
	}
	i, j := d.pointOrder[section], d.pointOrder[section+1]
	distance := geom2d.Distance(d.measurePoints[i], d.measurePoints[j])
	return FormatValue(distance, d.style)
}

// textInsertPoint centers the value text over the section's projected span,
// lifted off the line along the normal vector.
func (d *DimensionLine) textInsertPoint(section int) geom.Point {
	start, end := d.sectionPoints(section)
	offset := d.style.Height/2 + d.style.TextAbove
	return geom2d.Translate(geom2d.Midpoint(start, end), d.normal.Mul(offset))
}

func (d *DimensionLine) drawTicks() {
	if d.style.Tick2x {
		// one-sided ticks: every interior point gets both orientations,
		// the two end points get only one each
		for i := 0; i < d.PointCount()-1; i++ {
			d.addTick(i, false)
		}
		for i := 1; i < d.PointCount(); i++ {
			d.addTick(i, true)
		}
		return
	}
	for i := 0; i < d.PointCount(); i++ {
		d.addTick(i, false)
	}
}

func (d *DimensionLine) addTick(index int, rotate bool) {
	rotation := d.angle
	if rotate {
		rotation += 180
	}
	d.data.Append(entity.Insert{
		Block:    d.style.Tick,
		Point:    d.orderedPoint(index),
		Rotation: rotation,
		XScale:   d.style.TickFactor,
		YScale:   d.style.TickFactor,
		Layer:    d.layerName(),
	})
}
