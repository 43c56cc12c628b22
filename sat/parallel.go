package sat

import (
	"sync"

	"github.com/jinyuan70940/collision/shape"
)

// task splits [0, size) in contiguous chunks, one per worker, and calls fn for each index
func task(workersCount int, size int, fn func(i int)) {
	var wg sync.WaitGroup
	chunkSize := (size + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, size)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ProjectParallel is Projections with the axes spread across workers goroutines.
// Every axis is written to its own index, so the result is identical to Projections
// whatever the scheduling.
func ProjectParallel(a, b shape.Polygon, workers int) []AxisProjection {
	if workers <= 1 {
		return Projections(a, b)
	}

	axes := AxesOf(a, b)
	projections := make([]AxisProjection, len(axes))

	task(workers, len(axes), func(i int) {
		projections[i] = AxisProjection{
			Axis: axes[i],
			A:    Project(a.Vertices, axes[i]),
			B:    Project(b.Vertices, axes[i]),
		}
	})

	return projections
}

// ResolveParallel is Resolve with the projections computed by ProjectParallel.
// The minimum is selected once every axis is done, in axis order.
func ResolveParallel(a, b shape.Polygon, workers int) (MTV, bool) {
	return ResolveProjections(ProjectParallel(a, b, workers))
}
