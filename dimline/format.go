package dimline

import (
	"math"
	"strconv"
	"strings"

	"github.com/rossop/dxfwrite/dimstyle"
)

// floatingPoint is the decimal separator of formatted dimension values.
const floatingPoint = "."

// FormatValue converts a measured distance to its display text: scaled by the
// style's scale factor, rounded to half units if requested, formatted with
// the style's precision, stripped of trailing zeros and a trailing decimal
// point, and wrapped verbatim with prefix and suffix.
func FormatValue(distance float64, style *dimstyle.DimStyle) string {
	value := distance * style.Scale
	if style.RoundHalf {
		value = math.Round(value*2) / 2
	}
	text := strconv.FormatFloat(value, 'f', style.RoundVal, 64)
	if strings.Contains(text, floatingPoint) {
		text = strings.TrimRight(text, "0")
		text = strings.TrimRight(text, floatingPoint)
	}
	return style.Prefix + text + style.Suffix
}
