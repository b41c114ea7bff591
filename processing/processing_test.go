package processing

import (
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rossop/dxfwrite/dimline"
	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/entity"
)

type sliceSource struct {
	jobs []Job
}

func (s *sliceSource) ReadJobs(jobs chan<- Job) {
	for _, job := range s.jobs {
		jobs <- job
	}
	close(jobs)
}

type sliceTarget struct {
	batches []entity.List
}

func (t *sliceTarget) WriteEntities(batches <-chan entity.List) {
	for batch := range batches {
		t.batches = append(t.batches, batch)
	}
}

type job struct {
	dimension dimline.Dimension
}

func (j *job) Dimension() dimline.Dimension { return j.dimension }

func TestProcessJobs(t *testing.T) {
	registry := dimstyle.NewRegistry()
	_, err := registry.New("unit", func(s *dimstyle.DimStyle) { s.Scale = 1 })
	require.NoError(t, err)

	source := &sliceSource{}
	for i := 0; i < 3; i++ {
		dimension, err := dimline.New(registry, geom.Point{0, float64(5 + i)},
			[]geom.Point{{0, 0}, {10, 0}}, 0, dimline.WithStyle("unit"))
		require.NoError(t, err)
		source.jobs = append(source.jobs, &job{dimension: dimension})
	}
	target := &sliceTarget{}

	ProcessJobs(source, target)

	require.Len(t, target.batches, 3)
	for _, batch := range target.batches {
		// dimension line, 2 extension lines, text, 2 ticks
		assert.Len(t, batch, 6)
	}
}

func TestProcessJobs_SkipsFailingDimensions(t *testing.T) {
	registry := dimstyle.NewRegistry()

	good, err := dimline.New(registry, geom.Point{0, 5}, []geom.Point{{0, 0}, {10, 0}}, 0)
	require.NoError(t, err)
	stub, err := dimline.NewRadius(registry, geom.Point{0, 0}, geom.Point{3, 4}, 3)
	require.NoError(t, err)

	source := &sliceSource{jobs: []Job{&job{dimension: good}, &job{dimension: stub}}}
	target := &sliceTarget{}

	ProcessJobs(source, target)

	// the unimplemented radius dimension is skipped, the line survives
	require.Len(t, target.batches, 1)
	assert.NotEmpty(t, target.batches[0])
}

func TestProcessJobs_EmptySource(t *testing.T) {
	target := &sliceTarget{}
	ProcessJobs(&sliceSource{}, target)
	assert.Empty(t, target.batches)
}
