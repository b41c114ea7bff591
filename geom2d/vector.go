// Package geom2d provides the 2D vector and ray arithmetic needed to
// construct dimension lines. Points follow the github.com/go-spatial/geom
// convention of [2]float64 ordinates.
package geom2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-spatial/geom"
)

// ErrZeroVector is returned when a direction is requested from a vector
// without magnitude.
var ErrZeroVector = errors.New("geom2d: zero-magnitude vector")

// Vector represents a displacement between two points in 2D space
type Vector [2]float64

// X is the x component of the vector
func (v Vector) X() float64 { return v[0] }

// Y is the y component of the vector
func (v Vector) Y() float64 { return v[1] }

func (v Vector) Add(w Vector) Vector { return Vector{v[0] + w[0], v[1] + w[1]} }

func (v Vector) Sub(w Vector) Vector { return Vector{v[0] - w[0], v[1] - w[1]} }

func (v Vector) Mul(s float64) Vector { return Vector{v[0] * s, v[1] * s} }

func (v Vector) Div(s float64) Vector { return Vector{v[0] / s, v[1] / s} }

// Dot product of vector with another vector
func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1]
}

// Magnitude of vector
func (v Vector) Magnitude() float64 {
	return math.Hypot(v[0], v[1])
}

// Unit returns the vector scaled to magnitude 1.
// Returns ErrZeroVector for the zero vector.
func (v Vector) Unit() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, ErrZeroVector
	}
	return v.Div(m), nil
}

// Normal returns the vector rotated 90 degrees counterclockwise.
func (v Vector) Normal() Vector {
	return Vector{-v[1], v[0]}
}

// Sub returns the displacement from q to p.
func Sub(p, q geom.Point) Vector {
	return Vector{p.X() - q.X(), p.Y() - q.Y()}
}

// Translate moves p by v.
func Translate(p geom.Point, v Vector) geom.Point {
	return geom.Point{p.X() + v[0], p.Y() + v[1]}
}

// Distance between two points
func Distance(p, q geom.Point) float64 {
	return math.Hypot(p.X()-q.X(), p.Y()-q.Y())
}

// Midpoint between two points
func Midpoint(p, q geom.Point) geom.Point {
	return geom.Point{(p.X() + q.X()) / 2, (p.Y() + q.Y()) / 2}
}

// PointFromCoords builds a 2D point from a coordinate slice. Ordinates beyond
// x and y (z etc.) are dropped.
func PointFromCoords(coords []float64) (geom.Point, error) {
	if len(coords) < 2 {
		return geom.Point{}, fmt.Errorf("geom2d: point needs at least 2 coordinates, got %d", len(coords))
	}
	return geom.Point{coords[0], coords[1]}, nil
}

// PointsFromCoords builds 2D points from coordinate slices, dropping any
// ordinates beyond x and y.
func PointsFromCoords(coords [][]float64) ([]geom.Point, error) {
	points := make([]geom.Point, len(coords))
	for i, c := range coords {
		p, err := PointFromCoords(c)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}
