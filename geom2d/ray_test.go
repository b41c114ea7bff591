package geom2d

import (
	"math"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRay_Intersect(t *testing.T) {
	tests := []struct {
		name    string
		ray     Ray
		other   Ray
		want    geom.Point
		wantErr error
	}{
		{
			name:  "axes cross at origin",
			ray:   RayFromAngle(geom.Point{-5, 0}, 0),
			other: RayFromAngle(geom.Point{0, -5}, math.Pi/2),
			want:  geom.Point{0, 0},
		},
		{
			name:  "diagonal crosses horizontal",
			ray:   RayFromAngle(geom.Point{0, 0}, math.Pi/4),
			other: RayFromAngle(geom.Point{0, 4}, 0),
			want:  geom.Point{4, 4},
		},
		{
			name:    "parallel",
			ray:     RayFromAngle(geom.Point{0, 0}, math.Pi/4),
			other:   RayFromAngle(geom.Point{0, 1}, math.Pi/4),
			wantErr: ErrParallel,
		},
		{
			name:    "antiparallel",
			ray:     RayFromAngle(geom.Point{0, 0}, 0),
			other:   RayFromAngle(geom.Point{0, 1}, math.Pi),
			wantErr: ErrParallel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ray.Intersect(tt.other)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X(), got.X(), 1e-9)
			assert.InDelta(t, tt.want.Y(), got.Y(), 1e-9)
		})
	}
}

func TestRay_NormalThrough(t *testing.T) {
	ray := RayFromAngle(geom.Point{0, 0}, 0)
	normal := ray.NormalThrough(geom.Point{3, 7})

	assert.Equal(t, geom.Point{3, 7}, normal.Origin())
	assert.Zero(t, ray.Direction().Dot(normal.Direction()))

	// intersecting a ray with its normal through p projects p onto the ray
	projection, err := ray.Intersect(normal)
	require.NoError(t, err)
	assert.InDelta(t, 3, projection.X(), 1e-9)
	assert.InDelta(t, 0, projection.Y(), 1e-9)
}

func TestRay_NormalThrough_RoundTrip(t *testing.T) {
	// a point already on the ray projects to itself
	ray := RayFromAngle(geom.Point{1, 1}, math.Pi/4)
	onRay := geom.Point{3, 3}
	projection, err := ray.Intersect(ray.NormalThrough(onRay))
	require.NoError(t, err)
	assert.InDelta(t, onRay.X(), projection.X(), 1e-9)
	assert.InDelta(t, onRay.Y(), projection.Y(), 1e-9)
}

func TestRayThrough(t *testing.T) {
	ray, err := RayThrough(geom.Point{0, 0}, geom.Point{0, 2})
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 1}, ray.Direction())

	_, err = RayThrough(geom.Point{1, 1}, geom.Point{1, 1})
	require.ErrorIs(t, err, ErrZeroVector)
}

func TestCenterOfArc3Points(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 geom.Point
		want       geom.Point
		wantErr    bool
	}{
		{
			name: "unit circle",
			p1:   geom.Point{0, 1}, p2: geom.Point{1, 0}, p3: geom.Point{-1, 0},
			want: geom.Point{0, 0},
		},
		{
			name: "shifted circle",
			p1:   geom.Point{2, 4}, p2: geom.Point{5, 1}, p3: geom.Point{2, -2},
			want: geom.Point{2, 1},
		},
		{
			name: "collinear",
			p1:   geom.Point{0, 0}, p2: geom.Point{1, 1}, p3: geom.Point{2, 2},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CenterOfArc3Points(tt.p1, tt.p2, tt.p3)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X(), got.X(), 1e-9)
			assert.InDelta(t, tt.want.Y(), got.Y(), 1e-9)
		})
	}
}
