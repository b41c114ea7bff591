// Package drawing is a minimal dxf drawing container: layer and block tables
// plus the entity section, written in the old R12 tag format. It is the
// collaborator dimension lines emit their entities to.
package drawing

import (
	"fmt"
	"io"

	"github.com/go-spatial/geom"
	"github.com/umpc/go-sortedmap"

	"github.com/rossop/dxfwrite/dimline"
	"github.com/rossop/dxfwrite/entity"
)

// Layer is a layer table entry.
type Layer struct {
	Name  string
	Color int
}

// Block is a reusable group of entities inserted by name.
type Block struct {
	Name      string
	BasePoint geom.Point
	Entities  entity.List
}

// Drawing collects layers, blocks and entities and writes them as one dxf
// document. The layer and block tables are kept sorted by name so the output
// is deterministic regardless of registration order.
type Drawing struct {
	layers   *sortedmap.SortedMap
	blocks   *sortedmap.SortedMap
	entities entity.List
}

func New() *Drawing {
	return &Drawing{
		layers: sortedmap.New(4, func(x, y interface{}) bool {
			return x.(Layer).Name < y.(Layer).Name
		}),
		blocks: sortedmap.New(4, func(x, y interface{}) bool {
			return x.(*Block).Name < y.(*Block).Name
		}),
	}
}

// AddLayer registers a layer, replacing an existing one with the same name.
func (d *Drawing) AddLayer(l Layer) {
	d.layers.Replace(l.Name, l)
}

// AddBlock registers a block definition, replacing an existing one with the
// same name.
func (d *Drawing) AddBlock(b *Block) {
	d.blocks.Replace(b.Name, b)
}

// Add appends entities to the drawing in emission order.
func (d *Drawing) Add(entities ...entity.Entity) {
	d.entities.Append(entities...)
}

// AddDimension renders the dimension and appends its entities.
func (d *Drawing) AddDimension(dim dimline.Dimension) error {
	list, err := dim.Entities()
	if err != nil {
		return err
	}
	d.entities.Append(list...)
	return nil
}

// WriteEntities implements processing.Target: entity batches are appended in
// arrival order.
func (d *Drawing) WriteEntities(batches <-chan entity.List) {
	for batch := range batches {
		d.entities.Append(batch...)
	}
}

// Save writes the whole document: header, tables, blocks, entities, EOF.
func (d *Drawing) Save(w io.Writer) error {
	if err := d.saveHeader(w); err != nil {
		return fmt.Errorf("drawing: writing header: %w", err)
	}
	if err := d.saveTables(w); err != nil {
		return fmt.Errorf("drawing: writing tables: %w", err)
	}
	if err := d.saveBlocks(w); err != nil {
		return fmt.Errorf("drawing: writing blocks: %w", err)
	}
	if err := d.saveEntities(w); err != nil {
		return fmt.Errorf("drawing: writing entities: %w", err)
	}
	return tags(w,
		tag{0, "EOF"},
	)
}

func (d *Drawing) saveHeader(w io.Writer) error {
	return tags(w,
		tag{0, "SECTION"}, tag{2, "HEADER"},
		tag{9, "$ACADVER"}, tag{1, "AC1009"},
		tag{0, "ENDSEC"},
	)
}

func (d *Drawing) saveTables(w io.Writer) error {
	err := tags(w,
		tag{0, "SECTION"}, tag{2, "TABLES"},
		tag{0, "TABLE"}, tag{2, "LAYER"}, tag{70, d.layers.Len()},
	)
	if err != nil {
		return err
	}
	layers := d.layers.Map()
	for _, key := range d.layers.Keys() {
		layer := layers[key].(Layer)
		err = tags(w,
			tag{0, "LAYER"},
			tag{2, layer.Name},
			tag{70, 0},
			tag{62, layer.Color},
			tag{6, "CONTINUOUS"},
		)
		if err != nil {
			return err
		}
	}
	return tags(w,
		tag{0, "ENDTAB"},
		tag{0, "ENDSEC"},
	)
}

func (d *Drawing) saveBlocks(w io.Writer) error {
	err := tags(w,
		tag{0, "SECTION"}, tag{2, "BLOCKS"},
	)
	if err != nil {
		return err
	}
	blocks := d.blocks.Map()
	for _, key := range d.blocks.Keys() {
		block := blocks[key].(*Block)
		err = tags(w,
			tag{0, "BLOCK"},
			tag{8, "0"},
			tag{2, block.Name},
			tag{70, 0},
			tag{10, block.BasePoint.X()},
			tag{20, block.BasePoint.Y()},
		)
		if err != nil {
			return err
		}
		if err = block.Entities.Encode(w); err != nil {
			return err
		}
		if err = tags(w, tag{0, "ENDBLK"}); err != nil {
			return err
		}
	}
	return tags(w, tag{0, "ENDSEC"})
}

func (d *Drawing) saveEntities(w io.Writer) error {
	err := tags(w,
		tag{0, "SECTION"}, tag{2, "ENTITIES"},
	)
	if err != nil {
		return err
	}
	if err = d.entities.Encode(w); err != nil {
		return err
	}
	return tags(w, tag{0, "ENDSEC"})
}

type tag struct {
	code  int
	value interface{}
}

func tags(w io.Writer, tt ...tag) error {
	for _, t := range tt {
		if err := entity.Tag(w, t.code, t.value); err != nil {
			return err
		}
	}
	return nil
}
