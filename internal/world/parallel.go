package world

import (
	"context"
	"sync"

	"voxel-index/internal/profiling"
)

// ParallelForEachChunkWithNeighbors runs the neighbor traversal with visit
// called from up to workers goroutines. It returns only after every visit
// has finished, so stencil pointers never escape the call.
//
// visit may read any chunk and may write only n.Buffer: every slot is handed
// to exactly one visit. If ctx is cancelled, remaining chunks are skipped
// and ctx.Err() is returned.
func (ci *ChunkIndex) ParallelForEachChunkWithNeighbors(ctx context.Context, workers int, visit func(n *Neighborhood)) error {
	defer profiling.Track("world.ParallelForEachChunkWithNeighbors")()
	if workers < 1 {
		workers = 1
	}

	// Each job owns its record; the sequential iterator reuses one.
	jobs := make(chan Neighborhood, workers*2)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				if ctx.Err() != nil {
					continue
				}
				visit(&n)
			}
		}()
	}

	var err error
	for n := range ci.Neighborhoods() {
		select {
		case jobs <- *n:
		case <-ctx.Done():
			err = ctx.Err()
		}
		if err != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if err == nil {
		err = ctx.Err()
	}
	return err
}
