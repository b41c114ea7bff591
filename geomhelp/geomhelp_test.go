package geomhelp

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
)

func TestWktMustEncode(t *testing.T) {
	mp := geom.MultiPoint{{0, 0}, {10, 0}, {20, 5}}

	full := WktMustEncode(mp, 0)
	assert.True(t, strings.HasPrefix(full, "MULTIPOINT"))

	short := WktMustEncode(mp, 15)
	assert.LessOrEqual(t, utf8.RuneCountInString(short), 15)
	assert.True(t, strings.HasSuffix(short, "..."))
}

func TestMultiPointFromCoords(t *testing.T) {
	got := MultiPointFromCoords([][]float64{{0, 0, 7}, {10, 0}})
	assert.Equal(t, geom.MultiPoint{{0, 0}, {10, 0}}, got)
}
