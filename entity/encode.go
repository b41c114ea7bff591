package entity

import (
	"fmt"
	"io"

	"github.com/go-spatial/geom"
)

// Tag writes a single dxf group code / value pair.
func Tag(w io.Writer, code int, value interface{}) error {
	switch v := value.(type) {
	case float64:
		_, err := fmt.Fprintf(w, "%d\n%.6f\n", code, v)
		return err
	default:
		_, err := fmt.Fprintf(w, "%d\n%v\n", code, v)
		return err
	}
}

// tagWriter writes group code / value pairs and keeps the first error.
type tagWriter struct {
	w   io.Writer
	err error
}

func (t *tagWriter) tag(code int, value interface{}) {
	if t.err != nil {
		return
	}
	t.err = Tag(t.w, code, value)
}

// point writes a point as the x/y group code pair 10+offset, 20+offset.
func (t *tagWriter) point(offset int, p geom.Point) {
	t.tag(10+offset, p.X())
	t.tag(20+offset, p.Y())
}
