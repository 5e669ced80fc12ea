package hexsphere

import (
	"sync"

	. "github.com/alexozer/hexsphere/internal"
)

// RehexParallel is Rehex with the ring-ordering phase fanned out across
// workers. Collection still runs serially, since every triangle writes into
// three vertex buckets; once the arena is sealed each ring touches only its
// own vertex's pairs, so the ordering phase partitions cleanly by vertex
// range. Results are identical to Rehex. workers at or below 1 falls back to
// the serial path.
func RehexParallel(indices []uint32, vertexCount, workers int) (AdjacencyList, error) {
	if vertexCount < 0 {
		vertexCount = 0
	}
	if workers <= 1 {
		return Rehex(indices, vertexCount)
	}
	if workers > vertexCount {
		workers = vertexCount
	}

	arena, err := collect(indices, vertexCount)
	if err != nil {
		return nil, err
	}

	adj := make(AdjacencyList, vertexCount)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * vertexCount / workers
		hi := (w + 1) * vertexCount / workers

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var scratch [MaxRing]uint32
			for v := lo; v < hi; v++ {
				ring, ok := arena.Ring(v, scratch[:0])
				if !ok {
					errs[w] = &NonManifoldMeshError{Vertex: v}
					return
				}
				if len(ring) == 0 {
					continue
				}
				adj[v] = make(Ring, len(ring))
				for i, u := range ring {
					adj[v][i] = int(u)
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return adj, nil
}
