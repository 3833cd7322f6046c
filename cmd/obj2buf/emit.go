package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/thedaneeffect/obj2buf"
)

// emit writes the buffers as two JS array literals, the vertex buffer one
// vertex per line and the index buffer one triangle per line. Floats are
// printed with 5 significant digits, plenty for buffers that end up as
// 32-bit attributes anyway.
func emit(dst io.Writer, mesh *obj2buf.Mesh) error {
	w := bufio.NewWriter(dst)

	w.WriteString("let vbo = [")
	for _, v := range mesh.Verts {
		w.WriteString("\n   ")
		write_float(w, v.Pos.X())
		write_float(w, v.Pos.Y())
		write_float(w, v.Pos.Z())
		if v.HasUV {
			write_float(w, v.UV.X())
			write_float(w, v.UV.Y())
		}
		if v.HasNormal {
			write_float(w, v.Normal.X())
			write_float(w, v.Normal.Y())
			write_float(w, v.Normal.Z())
		}
	}
	w.WriteString("\n];\n\n")

	w.WriteString("let ebo = [")
	for i, idx := range mesh.Indices {
		if i%3 == 0 {
			w.WriteString("\n   ")
		}
		w.WriteByte(' ')
		w.WriteString(strconv.FormatUint(uint64(idx), 10))
		w.WriteByte(',')
	}
	w.WriteString("\n];\n\n")

	return w.Flush()
}

func write_float(w *bufio.Writer, f float32) {
	w.WriteByte(' ')
	w.WriteString(strconv.FormatFloat(float64(f), 'g', 5, 32))
	w.WriteByte(',')
}
