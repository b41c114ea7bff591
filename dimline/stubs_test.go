package dimline

import (
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rossop/dxfwrite/dimstyle"
)

func TestStubVariants_NotImplemented(t *testing.T) {
	registry := dimstyle.NewRegistry()

	angle, err := NewAngle(registry, geom.Point{0, 0}, geom.Point{1, 1}, geom.Point{2, 1}, geom.Point{1, 2})
	require.NoError(t, err)
	radius, err := NewRadius(registry, geom.Point{0, 0}, geom.Point{3, 4}, 3)
	require.NoError(t, err)
	arc, err := NewArc(registry, geom.Point{0, 5}, geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{0, 1}, false)
	require.NoError(t, err)

	for _, dimension := range []Dimension{angle, radius, arc} {
		_, err := dimension.Entities()
		assert.ErrorIs(t, err, ErrNotImplemented)
	}
}

func TestNewArc_ThreePoints(t *testing.T) {
	registry := dimstyle.NewRegistry()

	// circle through (0,1), (1,0) and (-1,0) is the unit circle
	arc, err := NewArc(registry, geom.Point{0, 5}, geom.Point{0, 1}, geom.Point{1, 0}, geom.Point{-1, 0}, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, arc.Center().X(), 1e-9)
	assert.InDelta(t, 0, arc.Center().Y(), 1e-9)
	assert.InDelta(t, 1, arc.Radius(), 1e-9)

	// collinear points define no circle
	_, err = NewArc(registry, geom.Point{0, 5}, geom.Point{0, 0}, geom.Point{1, 1}, geom.Point{2, 2}, true)
	require.Error(t, err)
}

func TestNewArc_CenterGiven(t *testing.T) {
	registry := dimstyle.NewRegistry()
	arc, err := NewArc(registry, geom.Point{0, 5}, geom.Point{1, 1}, geom.Point{4, 5}, geom.Point{1, 6}, false)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{1, 1}, arc.Center())
	assert.InDelta(t, 5, arc.Radius(), 1e-9)
}
