// Package processing takes care of the logistics around reading dimension
// jobs and writing the rendered entities to a Target. Not the rendering
// itself.
package processing

import (
	"log"
	"sync"

	"github.com/rossop/dxfwrite/entity"
)

// renderJobs renders each incoming job and forwards its entity batch.
// Each render is an independent pure computation over the job's own state;
// the style registry must be read-only by the time this runs.
func renderJobs(jobsIn <-chan Job, batchesOut chan<- entity.List) {
	var jobCount, entityCount, skippedCount uint64
	for job := range jobsIn {
		jobCount++
		batch, err := job.Dimension().Entities()
		if err != nil {
			skippedCount++
			log.Printf("    skipping dimension: %v", err)
			continue
		}
		entityCount += uint64(len(batch))
		batchesOut <- batch
	}
	close(batchesOut)

	log.Printf("    total dimensions: %d", jobCount)
	log.Printf("            entities: %d", entityCount)
	if skippedCount > 0 {
		log.Printf("             skipped: %d", skippedCount)
	}
}

// ProcessJobs reads jobs from source, renders them and hands the entity
// batches to target. It returns when the source is drained and the target
// has consumed everything.
func ProcessJobs(source Source, target Target) {
	jobs := make(chan Job)
	batches := make(chan entity.List)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		target.WriteEntities(batches)
	}()
	go renderJobs(jobs, batches)
	go source.ReadJobs(jobs)

	wg.Wait()
}
