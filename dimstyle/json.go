package dimstyle

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/perimeterx/marshmallow"
)

// AddJSON registers a style from a JSON document. Absent keys keep their
// default values, unknown keys are ignored. The document must carry a "name".
func (r *Registry) AddJSON(raw []byte) (*DimStyle, error) {
	style := &DimStyle{}
	if err := defaults.Set(style); err != nil {
		return nil, err
	}
	_, err := marshmallow.Unmarshal(raw, style, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return nil, fmt.Errorf("dimstyle: unmarshalling style: %w", err)
	}
	if err := r.validate.Struct(style); err != nil {
		return nil, fmt.Errorf("dimstyle: invalid style %q: %w", style.Name, err)
	}
	r.styles.Set(style.Name, style)
	return style, nil
}
