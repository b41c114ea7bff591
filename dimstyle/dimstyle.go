// Package dimstyle describes the presentation parameters of dimension lines
// and provides a registry that resolves style names, falling back to a
// built-in Default style for unknown names.
package dimstyle

// DefaultName is the name of the built-in fallback style.
const DefaultName = "Default"

// DimStyle is a named bag of presentation parameters. Styles are immutable
// once registered; overrides happen at registration time.
type DimStyle struct {
	// Name identifies the style in a Registry.
	Name string `json:"name" validate:"required"`
	// Tick is the name of the block inserted at every dimension line point.
	// drawing.Setup registers the built-in DIMTICK_* blocks.
	Tick string `json:"tick" default:"DIMTICK_ARCH"`
	// TickFactor scales the tick block.
	TickFactor float64 `json:"tickFactor" default:"1"`
	// Tick2x is for ticks drawn only to one side, like arrows: the tick is
	// inserted a second time rotated 180 degrees at every point except the
	// dimension line ends, which get only one orientation each. Set
	// DimLineExt to 0 with such ticks.
	Tick2x bool `json:"tick2x"`
	// Scale converts drawing units to the displayed value: value = units * Scale.
	Scale float64 `json:"scale" default:"100"`
	// RoundVal is the number of fractional digits of the displayed value.
	RoundVal int `json:"roundVal" validate:"gte=0"`
	// RoundHalf rounds the displayed value to half units: 0.4 and 0.6 become 0.5.
	RoundHalf bool `json:"roundHalf"`
	// TextColor is the dimension value text color index.
	TextColor int `json:"textColor" default:"7"`
	// Height is the dimension value text height.
	Height float64 `json:"height" default:"0.5" validate:"gt=0"`
	// Prefix and Suffix decorate the value text verbatim, like "x=" and " cm".
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
	// TextStyle is the text style (font) name.
	TextStyle string `json:"textStyle" default:"ISOCPEUR"`
	// Layer is the default layer for the whole dimension object. A dimension
	// instance may override it.
	Layer string `json:"layer" default:"DIMENSIONS"`
	// DimLineColor is the dimension line color index (0 = by layer).
	DimLineColor int `json:"dimLineColor" default:"7"`
	// DimLineExt extends the dimension line beyond its outer points, on both
	// ends, in line direction.
	DimLineExt float64 `json:"dimLineExt" default:"0.3"`
	// TextAbove lifts the value text this far off the dimension line.
	TextAbove float64 `json:"textAbove" default:"0.2"`
	// DimExtLine switches drawing of extension lines on or off.
	DimExtLine bool `json:"dimExtLine" default:"true"`
	// DimExtLineColor is the extension line color index (0 = by layer).
	DimExtLineColor int `json:"dimExtLineColor" default:"5"`
	// DimExtLineGap is kept clear between a measure target point and the end
	// of its extension line.
	DimExtLineGap float64 `json:"dimExtLineGap" default:"0.3"`
}
