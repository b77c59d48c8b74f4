package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/xlab/closer"

	"voxel-index/internal/chunkmap"
	"voxel-index/internal/config"
	"voxel-index/internal/profiling"
	"voxel-index/internal/scene"
	"voxel-index/internal/world"
)

func main() {
	var (
		scenePath  = flag.String("scene", "example.yaml", "scene file describing the columns to load")
		configPath = flag.String("config", "", "optional settings file")
		outPath    = flag.String("out", "chunkmap.png", "output PNG")
		scale      = flag.Int("scale", 4, "output pixels per block")
		below      = flag.String("below", "", "below-world policy override: sky or dark")
		workers    = flag.Int("workers", 0, "traversal workers override")
	)
	flag.Parse()

	defer closer.Close()
	closer.Bind(func() {
		log.Printf("profile: %s", profiling.TopN(5))
	})

	if err := run(*scenePath, *configPath, *outPath, *scale, *below, *workers); err != nil {
		closer.Fatalln(err)
	}
}

func run(scenePath, configPath, outPath string, scale int, below string, workers int) error {
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		f.Apply()
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	sc.Settings.Apply()
	if below != "" {
		config.SetBelowWorldPolicy(config.BelowWorldPolicy(below))
	}
	if workers > 0 {
		config.SetTraversalWorkers(workers)
	}

	ci := sc.Build()
	log.Printf("loaded %d columns (below-world policy %s)", ci.Len(), config.GetBelowWorldPolicy())

	profiling.ResetFrame()
	stats, err := buildPass(ci, config.GetTraversalWorkers())
	if err != nil {
		return err
	}
	log.Printf("traversal: %d chunks, %d on an edge, %d buffers assigned in %v",
		stats.chunks, stats.edges, stats.assigned, stats.elapsed)
	if slow := config.GetSlowTraversal(); slow > 0 && stats.elapsed > slow {
		log.Printf("Slow traversal: %v. Top tasks: %s", stats.elapsed, profiling.TopN(3))
	}

	cached := 0
	ci.ForEachChunk(func(_, _, _ int, _ *world.Chunk, _ world.BufferHandle, ok bool) {
		if ok {
			cached++
		}
	})
	log.Printf("resubmitted %d cached buffers", cached)

	img := chunkmap.Render(ci, chunkmap.Options{Scale: scale, Labels: true})
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("wrote %s (%dx%d)", outPath, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

type passStats struct {
	chunks   int64
	edges    int64
	assigned int64
	elapsed  time.Duration
}

// buildPass stands in for a mesh build: it walks every neighborhood and
// caches a fresh buffer handle for each chunk that does not have one yet.
func buildPass(ci *world.ChunkIndex, workers int) (passStats, error) {
	var (
		stats  passStats
		nextID atomic.Uint32
	)
	start := time.Now()
	err := ci.ParallelForEachChunkWithNeighbors(context.Background(), workers, func(n *world.Neighborhood) {
		atomic.AddInt64(&stats.chunks, 1)
		if n.TouchesSentinel() {
			atomic.AddInt64(&stats.edges, 1)
		}
		if _, ok := n.Buffer.Get(); !ok {
			n.Buffer.Set(world.BufferHandle(nextID.Add(1)))
			atomic.AddInt64(&stats.assigned, 1)
		}
	})
	stats.elapsed = time.Since(start)
	if err != nil {
		return stats, fmt.Errorf("traversal: %w", err)
	}
	return stats, nil
}
