// Package obj2buf converts wavefront-style mesh text into the two flat
// buffers a rendering pipeline wants: an interleaved vertex attribute
// buffer and an index buffer into it. Faces are triangulated, vertices
// that reference the same attribute triple are shared, and the result can
// optionally be reordered front-to-back without breaking connectivity.
//
// Format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj2buf

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

type (
	float = float32
	vec2  = mgl.Vec2
	vec3  = mgl.Vec3
)

// Options configures a single conversion run.
type Options struct {
	NoTexcoords bool // drop texture coordinates even when faces reference them
	NoNormals   bool // drop normals even when faces reference them
	Sort        bool // reorder vertices by Z then X after assembly
}

// Vertex is one assembled entry of the vertex buffer. Pos is always
// valid; UV and Normal only when the matching flag is set. A Vertex never
// changes after it is interned.
type Vertex struct {
	Pos       vec3
	UV        vec2
	Normal    vec3
	HasUV     bool
	HasNormal bool
}

// stride is the number of floats this vertex occupies interleaved.
func (v Vertex) stride() int {
	n := 3
	if v.HasUV {
		n += 2
	}
	if v.HasNormal {
		n += 3
	}
	return n
}

// Mesh is the result of a conversion: the vertex buffer in first-seen
// order and the index buffer referencing it, three indices per triangle.
type Mesh struct {
	Verts   []Vertex
	Indices []uint32
}

// Stride reports the number of floats per interleaved vertex. ok is false
// when the presence flags differ between vertices, in which case there is
// no single stride and callers must consult the per-vertex flags.
func (m *Mesh) Stride() (stride int, ok bool) {
	if len(m.Verts) == 0 {
		return 3, true
	}
	stride = m.Verts[0].stride()
	for _, v := range m.Verts[1:] {
		if v.stride() != stride {
			return stride, false
		}
	}
	return stride, true
}

// Interleave flattens the vertex buffer into one attribute stream,
// position then texcoord then normal, each vertex contributing only the
// attributes its flags declare.
func (m *Mesh) Interleave() []float {
	out := make([]float, 0, len(m.Verts)*8)
	for _, v := range m.Verts {
		out = append(out, v.Pos.X(), v.Pos.Y(), v.Pos.Z())
		if v.HasUV {
			out = append(out, v.UV.X(), v.UV.Y())
		}
		if v.HasNormal {
			out = append(out, v.Normal.X(), v.Normal.Y(), v.Normal.Z())
		}
	}
	return out
}

// Triangles expands the index buffer into vertex triples.
func (m *Mesh) Triangles() [][3]Vertex {
	tris := make([][3]Vertex, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tris = append(tris, [3]Vertex{
			m.Verts[m.Indices[i]],
			m.Verts[m.Indices[i+1]],
			m.Verts[m.Indices[i+2]],
		})
	}
	return tris
}
