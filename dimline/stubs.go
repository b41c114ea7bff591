package dimline

import (
	"errors"

	"github.com/go-spatial/geom"

	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/entity"
	"github.com/rossop/dxfwrite/geom2d"
)

// ErrNotImplemented is returned by the dimension variants whose geometry is
// not implemented yet.
var ErrNotImplemented = errors.New("dimline: dimension variant not implemented")

// DimensionAngle dimensions the angle at center between the legs through
// start and end, with the dimension arc through pos.
// Geometry is not implemented yet, the type reserves the API.
type DimensionAngle struct {
	base
	pos    geom.Point
	center geom.Point
	start  geom.Point
	end    geom.Point
}

func NewAngle(registry *dimstyle.Registry, pos, center, start, end geom.Point, opts ...Option) (*DimensionAngle, error) {
	return &DimensionAngle{
		base:   newBase(registry, opts),
		pos:    pos,
		center: center,
		start:  start,
		end:    end,
	}, nil
}

func (d *DimensionAngle) Entities() (entity.List, error) {
	return nil, ErrNotImplemented
}

// DimensionArc dimensions the arc length from start to end around center,
// with the dimension line through pos. With arc3Points the circle is defined
// by three points on the arc instead and the center is computed.
// Geometry is not implemented yet, the type reserves the API.
type DimensionArc struct {
	base
	pos    geom.Point
	center geom.Point
	start  geom.Point
	end    geom.Point
	radius float64
}

func NewArc(registry *dimstyle.Registry, pos, center, start, end geom.Point, arc3Points bool, opts ...Option) (*DimensionArc, error) {
	if arc3Points {
		var err error
		center, err = geom2d.CenterOfArc3Points(center, start, end)
		if err != nil {
			return nil, err
		}
	}
	return &DimensionArc{
		base:   newBase(registry, opts),
		pos:    pos,
		center: center,
		start:  start,
		end:    end,
		radius: geom2d.Distance(center, start),
	}, nil
}

// Radius of the dimensioned arc.
func (d *DimensionArc) Radius() float64 { return d.radius }

// Center of the dimensioned arc.
func (d *DimensionArc) Center() geom.Point { return d.center }

func (d *DimensionArc) Entities() (entity.List, error) {
	return nil, ErrNotImplemented
}

// DimensionRadius dimensions a radius from target towards center over the
// given length in drawing units.
// Geometry is not implemented yet, the type reserves the API.
type DimensionRadius struct {
	base
	center geom.Point
	target geom.Point
	length float64
}

func NewRadius(registry *dimstyle.Registry, center, target geom.Point, length float64, opts ...Option) (*DimensionRadius, error) {
	return &DimensionRadius{
		base:   newBase(registry, opts),
		center: center,
		target: target,
		length: length,
	}, nil
}

func (d *DimensionRadius) Entities() (entity.List, error) {
	return nil, ErrNotImplemented
}
