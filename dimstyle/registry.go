package dimstyle

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry maps style names to styles. It is scoped to a drawing, not process
// wide: register all styles first, then hand the registry out read-only to
// (possibly concurrent) renders.
type Registry struct {
	styles   *orderedmap.OrderedMap[string, *DimStyle]
	fallback *DimStyle
	validate *validator.Validate
}

// NewRegistry returns a registry holding only the built-in Default style.
func NewRegistry() *Registry {
	r := &Registry{
		styles:   orderedmap.New[string, *DimStyle](),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	fallback, err := r.New(DefaultName, nil)
	if err != nil {
		panic(fmt.Errorf("dimstyle: built-in default style is invalid: %w", err))
	}
	r.fallback = fallback
	return r
}

// New registers a style under name. The style starts from the full default
// parameter set, modify applies the caller's overrides.
func (r *Registry) New(name string, modify func(*DimStyle)) (*DimStyle, error) {
	style := &DimStyle{}
	if err := defaults.Set(style); err != nil {
		return nil, err
	}
	style.Name = name
	if modify != nil {
		modify(style)
	}
	if err := r.validate.Struct(style); err != nil {
		return nil, fmt.Errorf("dimstyle: invalid style %q: %w", name, err)
	}
	r.styles.Set(name, style)
	return style, nil
}

// Get returns the named style. Unknown names silently resolve to the Default
// style, Get never fails.
func (r *Registry) Get(name string) *DimStyle {
	if style, ok := r.styles.Get(name); ok {
		return style
	}
	return r.fallback
}

// Names lists the registered style names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.styles.Len())
	for p := r.styles.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}
