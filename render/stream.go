package render

import (
	"io"

	"github.com/soypat/isomesh"
)

var _ Renderer = (*GridRenderer)(nil)

// GridRenderer streams the marching cubes surface of a field cell by cell.
// Triangles are produced in the same order as MarchingCubes but are not
// indexed, so shared vertices are repeated.
type GridRenderer struct {
	w         gridWalker
	next      isomesh.V3i
	done      bool
	unwritten triangle3Buffer
	// triangles counts triangles handed out by ReadTriangles.
	triangles int
}

// NewGridRenderer returns a Renderer over the surface of f at threshold
// surface. cfg.Workers is ignored.
func NewGridRenderer(f isomesh.Field, surface float64, cfg *Config) (*GridRenderer, error) {
	if err := isomesh.CheckField(f); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	w := newGridWalker(f, surface, cfg.cellSize())
	return &GridRenderer{
		w:         w,
		done:      w.empty(),
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, marchingCubesMaxTriangles)},
	}, nil
}

// ReadTriangles writes triangles rendered from the field into the argument buffer.
// returns number of triangles written and an error if present.
func (gr *GridRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if gr.unwritten.Len() > 0 {
		n += gr.unwritten.Read(dst)
	}
	if n == 0 && gr.done {
		return 0, io.EOF
	}
	var cm cellMesh
	for n < len(dst) && !gr.done {
		cell := gr.next
		gr.advance()
		if !gr.w.cell(&cm, cell) {
			continue
		}
		for i := 0; i < cm.nt; i++ {
			if n < len(dst) {
				dst[n] = cm.triangle(i)
				n++
			} else {
				// Not enough room in buffer, keep the rest for the next call.
				gr.unwritten.Write([]Triangle3{cm.triangle(i)})
			}
		}
	}
	gr.triangles += n
	return n, nil
}

// advance moves the cursor to the next cell in Y, Z, X order.
func (gr *GridRenderer) advance() {
	cells := gr.w.cells
	gr.next[0]++
	if gr.next[0] < cells[0] {
		return
	}
	gr.next[0] = 0
	gr.next[2]++
	if gr.next[2] < cells[2] {
		return
	}
	gr.next[2] = 0
	gr.next[1]++
	if gr.next[1] >= cells[1] {
		gr.done = true
	}
}
