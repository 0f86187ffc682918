package isomesh

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ReadGridJSON reads a Grid encoded as a JSON array of arrays of arrays of
// numbers indexed as [y][z][x].
func ReadGridJSON(r io.Reader) (*Grid, error) {
	var object [][][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&object); err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	g, err := GridFromNested(object)
	if err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	return g, nil
}

// WriteGridJSON writes g in the layout ReadGridJSON expects.
func WriteGridJSON(w io.Writer, g *Grid) error {
	object := make([][][]float64, g.size[1])
	for y := range object {
		object[y] = make([][]float64, g.size[2])
		for z := range object[y] {
			start := g.rowStart(y, z)
			object[y][z] = g.data[start : start+g.size[0]]
		}
	}
	return errors.Wrap(json.NewEncoder(w).Encode(object), "write grid")
}
