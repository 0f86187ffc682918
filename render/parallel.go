package render

import "sync"

// parallel splits the Y cell range into contiguous slabs walked by separate
// goroutines, each with its own MeshBuilder. Slab meshes are merged in slab
// order so the result is identical to a sequential walk.
func (w *gridWalker) parallel(workers int) *Mesh {
	ny := w.cells[1]
	if workers > ny {
		workers = ny
	}
	slabs := make([]*MeshBuilder, workers)
	var wg sync.WaitGroup
	for i := range slabs {
		y0, y1 := i*ny/workers, (i+1)*ny/workers
		b := NewMeshBuilder()
		slabs[i] = b
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.walk(b, y0, y1)
		}()
	}
	wg.Wait()
	final := NewMeshBuilder()
	for _, b := range slabs {
		final.MergeMesh(&b.mesh)
	}
	return final.Mesh()
}
