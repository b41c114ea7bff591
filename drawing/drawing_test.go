package drawing

import (
	"strings"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rossop/dxfwrite/dimline"
	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/entity"
)

func TestSetup(t *testing.T) {
	registry := dimstyle.NewRegistry()
	d := New()
	Setup(d, registry)

	var sb strings.Builder
	require.NoError(t, d.Save(&sb))
	doc := sb.String()

	for _, block := range []string{"DIMTICK_ARCH", "DIMTICK_DOT", "DIMTICK_ARROW"} {
		assert.Contains(t, doc, "2\n"+block+"\n")
	}
	assert.Contains(t, doc, "2\nDIMENSIONS\n")
}

func TestSave_Sections(t *testing.T) {
	d := New()
	var sb strings.Builder
	require.NoError(t, d.Save(&sb))
	doc := sb.String()

	for _, section := range []string{"HEADER", "TABLES", "BLOCKS", "ENTITIES"} {
		assert.Contains(t, doc, "2\n"+section+"\n")
	}
	assert.True(t, strings.HasSuffix(doc, "0\nEOF\n"))
}

func TestSave_BlocksSortedByName(t *testing.T) {
	d := New()
	// registration order reversed on purpose
	d.AddBlock(&Block{Name: "ZULU"})
	d.AddBlock(&Block{Name: "ALPHA"})
	d.AddLayer(Layer{Name: "LATE", Color: 7})
	d.AddLayer(Layer{Name: "EARLY", Color: 7})

	var one strings.Builder
	require.NoError(t, d.Save(&one))
	assert.Less(t, strings.Index(one.String(), "ALPHA"), strings.Index(one.String(), "ZULU"))
	assert.Less(t, strings.Index(one.String(), "EARLY"), strings.Index(one.String(), "LATE"))

	// a second save is byte-identical
	var two strings.Builder
	require.NoError(t, d.Save(&two))
	assert.Equal(t, one.String(), two.String())
}

func TestAddDimension(t *testing.T) {
	registry := dimstyle.NewRegistry()
	_, err := registry.New("unit", func(s *dimstyle.DimStyle) { s.Scale = 1 })
	require.NoError(t, err)

	d := New()
	Setup(d, registry)

	dimension, err := dimline.New(registry, geom.Point{0, 5}, []geom.Point{{0, 0}, {10, 0}}, 0, dimline.WithStyle("unit"))
	require.NoError(t, err)
	require.NoError(t, d.AddDimension(dimension))

	var sb strings.Builder
	require.NoError(t, d.Save(&sb))
	doc := sb.String()
	assert.Contains(t, doc, "1\n10\n")           // the value text
	assert.Contains(t, doc, "0\nINSERT\n")       // the ticks
	assert.Contains(t, doc, "2\nDIMTICK_ARCH\n") // tick block reference
}

func TestAddDimension_PropagatesRenderErrors(t *testing.T) {
	registry := dimstyle.NewRegistry()
	d := New()

	stub, err := dimline.NewRadius(registry, geom.Point{0, 0}, geom.Point{3, 4}, 3)
	require.NoError(t, err)
	require.ErrorIs(t, d.AddDimension(stub), dimline.ErrNotImplemented)
}

func TestWriteEntities(t *testing.T) {
	d := New()
	batches := make(chan entity.List, 2)
	batches <- entity.List{entity.Line{Layer: "A"}}
	batches <- entity.List{entity.Line{Layer: "B"}}
	close(batches)

	d.WriteEntities(batches)

	var sb strings.Builder
	require.NoError(t, d.Save(&sb))
	assert.Less(t, strings.Index(sb.String(), "8\nA\n"), strings.Index(sb.String(), "8\nB\n"))
}
