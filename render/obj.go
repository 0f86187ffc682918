package render

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// WriteOBJ writes an indexed mesh as a Wavefront OBJ file with one "v"
// line per vertex and one "f" line per triangle. Vertex coordinates are
// written with the shortest representation that round-trips exactly.
func WriteOBJ(w io.Writer, m *Mesh) error {
	if len(m.Triangles) == 0 {
		return errors.New("empty mesh")
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 96)
	for _, v := range m.Vertices {
		buf = append(buf[:0], 'v', ' ')
		buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Z, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	for _, t := range m.Triangles {
		// OBJ indices start at 1.
		buf = append(buf[:0], 'f', ' ')
		buf = strconv.AppendInt(buf, int64(t[0]+1), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(t[1]+1), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(t[2]+1), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
