package geomhelp

import (
	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/muesli/reflow/truncate"
)

// WktMustEncode renders a geometry as WKT for log output, truncated to maxLen
// runes (0 = no limit).
func WktMustEncode(g geom.Geometry, maxLen uint) string {
	if maxLen == 0 {
		return wkt.MustEncode(g)
	}
	return truncate.StringWithTail(wkt.MustEncode(g), maxLen, "...")
}

// MultiPointFromCoords converts coordinate slices to a geom.MultiPoint,
// dropping ordinates beyond x and y. Coordinates with fewer than 2 ordinates
// must be filtered out beforehand.
func MultiPointFromCoords(coords [][]float64) geom.MultiPoint {
	mp := make(geom.MultiPoint, len(coords))
	for i, c := range coords {
		mp[i] = [2]float64{c[0], c[1]}
	}
	return mp
}
