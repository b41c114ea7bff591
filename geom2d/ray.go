package geom2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-spatial/geom"
)

// ErrParallel is returned when two rays have collinear directions and no
// single intersection point exists.
var ErrParallel = errors.New("geom2d: rays are parallel")

// determinants below parallelEps are treated as collinear directions
const parallelEps = 1e-12

// Ray is a directed line, held in canonical form as an origin point and a
// unit direction vector.
type Ray struct {
	origin geom.Point
	dir    Vector
}

// RayFromAngle returns the ray through origin at the given angle in radians,
// measured counterclockwise from the x-axis.
func RayFromAngle(origin geom.Point, angle float64) Ray {
	return Ray{origin: origin, dir: Vector{math.Cos(angle), math.Sin(angle)}}
}

// RayThrough returns the ray from p through q.
// Fails if p and q coincide.
func RayThrough(p, q geom.Point) (Ray, error) {
	dir, err := Sub(q, p).Unit()
	if err != nil {
		return Ray{}, fmt.Errorf("geom2d: ray through coincident points %v: %w", p, err)
	}
	return Ray{origin: p, dir: dir}, nil
}

// Origin is the point the ray passes through.
func (r Ray) Origin() geom.Point { return r.origin }

// Direction is the unit direction vector of the ray.
func (r Ray) Direction() Vector { return r.dir }

// NormalThrough returns the ray through p perpendicular to r. Intersecting it
// with r projects p onto r.
func (r Ray) NormalThrough(p geom.Point) Ray {
	return Ray{origin: p, dir: r.dir.Normal()}
}

// Intersect solves the parametric system
//
//	r.origin + s*r.dir = o.origin + t*o.dir
//
// for the unique intersection point. Returns ErrParallel when the direction
// vectors are collinear.
func (r Ray) Intersect(o Ray) (geom.Point, error) {
	det := r.dir[0]*o.dir[1] - r.dir[1]*o.dir[0]
	if math.Abs(det) < parallelEps {
		return geom.Point{}, ErrParallel
	}
	d := Sub(o.origin, r.origin)
	s := (d[0]*o.dir[1] - d[1]*o.dir[0]) / det
	return Translate(r.origin, r.dir.Mul(s)), nil
}

// CenterOfArc3Points returns the center of the circle through the three given
// points, found as the intersection of two chord bisectors. Fails when the
// points are collinear or not distinct.
func CenterOfArc3Points(p1, p2, p3 geom.Point) (geom.Point, error) {
	chord1, err := RayThrough(p1, p2)
	if err != nil {
		return geom.Point{}, err
	}
	chord2, err := RayThrough(p1, p3)
	if err != nil {
		return geom.Point{}, err
	}
	bisector1 := chord1.NormalThrough(Midpoint(p1, p2))
	bisector2 := chord2.NormalThrough(Midpoint(p1, p3))
	center, err := bisector1.Intersect(bisector2)
	if err != nil {
		return geom.Point{}, fmt.Errorf("geom2d: arc points %v %v %v are collinear: %w", p1, p2, p3, err)
	}
	return center, nil
}
