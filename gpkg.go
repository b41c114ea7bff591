package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/gpkg"

	"github.com/rossop/dxfwrite/dimline"
	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/geomhelp"
	"github.com/rossop/dxfwrite/processing"
)

// gpkgParams are the dimension parameters shared by all point layers of a
// GeoPackage source; the measure points come from the layers themselves.
type gpkgParams struct {
	pos       string // JSON [x,y]
	angle     float64
	styleName string
}

type gpkgSource struct {
	handle   *gpkg.Handle
	registry *dimstyle.Registry
	pos      geom.Point
	angle    float64
	style    string
}

type gpkgTable struct {
	name    string
	gcolumn string
}

func newGpkgSource(file string, registry *dimstyle.Registry, params gpkgParams) (*gpkgSource, error) {
	var pos [2]float64
	if err := json.Unmarshal([]byte(params.pos), &pos); err != nil {
		return nil, fmt.Errorf("pos %q: %w", params.pos, err)
	}
	handle, err := gpkg.Open(file)
	if err != nil {
		return nil, err
	}
	return &gpkgSource{
		handle:   handle,
		registry: registry,
		pos:      geom.Point{pos[0], pos[1]},
		angle:    params.angle,
		style:    params.styleName,
	}, nil
}

func (s *gpkgSource) Close() {
	s.handle.Close()
}

// ReadJobs produces one dimension line per point layer, dimensioning all the
// layer's points along the configured direction.
func (s *gpkgSource) ReadJobs(jobs chan<- processing.Job) {
	defer close(jobs)
	for _, table := range s.pointTables() {
		points := s.readPoints(table)
		if len(points) < 2 {
			log.Printf("  skipping layer %s: needs at least 2 points, has %d", table.name, len(points))
			continue
		}
		dimension, err := dimline.New(s.registry, s.pos, points, s.angle, dimline.WithStyle(s.style))
		if err != nil {
			log.Printf("  skipping layer %s: %v", table.name, err)
			continue
		}
		log.Printf("  layer %s: dimension through %s", table.name,
			geomhelp.WktMustEncode(geom.MultiPoint(pointsToCoords(points)), 80))
		jobs <- &dimensionJob{dimension: dimension}
	}
}

func (s *gpkgSource) pointTables() []gpkgTable {
	query := `SELECT table_name, column_name FROM gpkg_geometry_columns WHERE geometry_type_name IN ('POINT', 'MULTIPOINT');`
	rows, err := s.handle.Query(query)
	if err != nil {
		log.Fatalf("error reading the source table information: %s", err)
	}
	defer rows.Close()

	var tables []gpkgTable
	for rows.Next() {
		var t gpkgTable
		if err := rows.Scan(&t.name, &t.gcolumn); err != nil {
			log.Fatalf("error reading the source table information: %s", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		log.Fatal(err)
	}
	return tables
}

func (s *gpkgSource) readPoints(t gpkgTable) []geom.Point {
	rows, err := s.handle.Query(fmt.Sprintf(`SELECT "%s" FROM "%s";`, t.gcolumn, t.name))
	if err != nil {
		log.Fatalf("error reading layer %s: %s", t.name, err)
	}
	defer rows.Close()

	var points []geom.Point
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			log.Fatalf("error reading row of layer %s: %s", t.name, err)
		}
		sb, err := gpkg.DecodeGeometry(blob)
		if err != nil {
			log.Fatalf("error decoding the geometry: %s", err)
		}
		switch g := sb.Geometry.(type) {
		case geom.Point:
			points = append(points, g)
		case geom.MultiPoint:
			for _, p := range g {
				points = append(points, geom.Point(p))
			}
		default:
			log.Printf("  ignoring non-point geometry in layer %s: %T", t.name, g)
		}
	}
	if err := rows.Err(); err != nil {
		log.Fatal(err)
	}
	return points
}

func pointsToCoords(points []geom.Point) [][2]float64 {
	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = p
	}
	return coords
}
