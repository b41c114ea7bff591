package main

// A job document carries styles and dimensions in one JSON file:
//
//	{
//	  "styles": [
//	    {"name": "walls", "scale": 1, "roundVal": 1, "tick2x": true}
//	  ],
//	  "dimensions": [
//	    {"pos": [0, 5], "angle": 0, "points": [[0, 0], [10, 0.3]],
//	     "style": "walls", "layer": "DIMS", "textOverrides": {"0": "10 m"}}
//	  ]
//	}

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/rossop/dxfwrite/dimline"
	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/geom2d"
	"github.com/rossop/dxfwrite/geomhelp"
	"github.com/rossop/dxfwrite/processing"
)

type dimensionJob struct {
	dimension dimline.Dimension
}

func (j *dimensionJob) Dimension() dimline.Dimension { return j.dimension }

type jobDocument struct {
	Styles     []json.RawMessage `json:"styles"`
	Dimensions []dimensionSpec   `json:"dimensions"`
}

type dimensionSpec struct {
	Pos           []float64         `json:"pos"`
	Angle         float64           `json:"angle"`
	Points        [][]float64       `json:"points"`
	Style         string            `json:"style"`
	Layer         string            `json:"layer"`
	TextOverrides map[string]string `json:"textOverrides"`
}

type jsonSource struct {
	jobs []processing.Job
}

func (s *jsonSource) ReadJobs(jobs chan<- processing.Job) {
	for _, job := range s.jobs {
		jobs <- job
	}
	close(jobs)
}

// loadJobs parses a job document. Styles are registered first so the
// registry is complete and read-only before any dimension renders.
func loadJobs(path string, registry *dimstyle.Registry) (*jsonSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc jobDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	for i, rawStyle := range doc.Styles {
		style, err := registry.AddJSON(rawStyle)
		if err != nil {
			return nil, fmt.Errorf("style %d: %w", i, err)
		}
		log.Printf("  style %q", style.Name)
	}

	source := &jsonSource{}
	for i, spec := range doc.Dimensions {
		dimension, err := buildDimension(spec, registry)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		source.jobs = append(source.jobs, &dimensionJob{dimension: dimension})
	}
	return source, nil
}

func buildDimension(spec dimensionSpec, registry *dimstyle.Registry) (dimline.Dimension, error) {
	pos, err := geom2d.PointFromCoords(spec.Pos)
	if err != nil {
		return nil, fmt.Errorf("pos: %w", err)
	}
	points, err := geom2d.PointsFromCoords(spec.Points)
	if err != nil {
		return nil, err
	}

	var opts []dimline.Option
	if spec.Style != "" {
		opts = append(opts, dimline.WithStyle(spec.Style))
	}
	if spec.Layer != "" {
		opts = append(opts, dimline.WithLayer(spec.Layer))
	}
	dimension, err := dimline.New(registry, pos, points, spec.Angle, opts...)
	if err != nil {
		return nil, err
	}

	for key, text := range spec.TextOverrides {
		section, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("text override key %q is not a section index", key)
		}
		if err := dimension.SetText(section, text); err != nil {
			return nil, err
		}
	}

	log.Printf("  dimension through %s", geomhelp.WktMustEncode(geomhelp.MultiPointFromCoords(spec.Points), 80))
	return dimension, nil
}
