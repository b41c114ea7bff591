package processing

import (
	"github.com/rossop/dxfwrite/dimline"
	"github.com/rossop/dxfwrite/entity"
)

// Job is a fully constructed dimension waiting to be rendered.
type Job interface {
	Dimension() dimline.Dimension
}

// Source produces jobs and closes the channel when done.
type Source interface {
	ReadJobs(chan<- Job)
}

// Target consumes rendered entity batches, one batch per job. Order within a
// batch is the emission order and must be preserved; batches from different
// jobs may be interleaved freely.
type Target interface {
	WriteEntities(<-chan entity.List)
}
