package renderer

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"
)

// WorkerPool renders tiles in parallel on a bounded pond pool
type WorkerPool struct {
	pool       pond.ResultPool[TileStats]
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Tasks submitted after ctx is done are not run.
func NewWorkerPool(ctx context.Context, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		pool:       pond.NewResultPool[TileStats](numWorkers, pond.WithContext(ctx)),
		numWorkers: numWorkers,
	}
}

// RenderTiles runs render for every tile and returns the per-tile statistics
// in tile order
func (wp *WorkerPool) RenderTiles(tiles []*Tile, render func(*Tile) TileStats) ([]TileStats, error) {
	group := wp.pool.NewGroup()
	for _, tile := range tiles {
		group.Submit(func() TileStats {
			return render(tile)
		})
	}
	return group.Wait()
}

// Stop waits for running tasks and shuts the pool down
func (wp *WorkerPool) Stop() {
	wp.pool.StopAndWait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
