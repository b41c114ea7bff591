package drawing

import (
	"github.com/go-spatial/geom"

	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/entity"
)

// byBlock entities take their color from the inserting block reference;
// block content lives on layer "0".
const blockLayer = "0"

// Setup registers the built-in tick blocks DIMTICK_ARCH, DIMTICK_DOT and
// DIMTICK_ARROW plus the default DIMENSIONS layer with the drawing. Call it
// once per drawing before adding dimension lines that use these ticks.
//
// Default pen assignment of the color indices:
//
//	1 : 1.40mm - red
//	2 : 0.35mm - yellow
//	3 : 0.70mm - green
//	4 : 0.50mm - cyan
//	5 : 0.13mm - blue
//	6 : 1.00mm - magenta
//	7 : 0.25mm - white/black
func Setup(d *Drawing, registry *dimstyle.Registry) {
	dimColor := registry.Get(dimstyle.DefaultName).DimExtLineColor

	d.AddBlock(&Block{
		Name: "DIMTICK_ARCH",
		Entities: entity.List{
			entity.Line{Start: geom.Point{0, 0.5}, End: geom.Point{0, -0.5}, Color: dimColor, Layer: blockLayer},
			entity.Line{Start: geom.Point{-0.2, -0.2}, End: geom.Point{0.2, 0.2}, Color: 4, Layer: blockLayer},
		},
	})
	d.AddBlock(&Block{
		Name: "DIMTICK_DOT",
		Entities: entity.List{
			entity.Line{Start: geom.Point{0, 0.5}, End: geom.Point{0, -0.5}, Color: dimColor, Layer: blockLayer},
			entity.Circle{Center: geom.Point{0, 0}, Radius: 0.1, Color: 4, Layer: blockLayer},
		},
	})
	d.AddBlock(&Block{
		Name: "DIMTICK_ARROW",
		Entities: entity.List{
			entity.Line{Start: geom.Point{0, 0.5}, End: geom.Point{0, -0.5}, Color: dimColor, Layer: blockLayer},
			entity.Solid{Vertices: []geom.Point{{0, 0}, {0.3, 0.05}, {0.3, -0.05}}, Color: 7, Layer: blockLayer},
		},
	})

	d.AddLayer(Layer{Name: registry.Get(dimstyle.DefaultName).Layer, Color: 7})
}
