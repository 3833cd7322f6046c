package obj2buf

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
)

// Z values closer than this are treated as equal and ordered by X.
const sort_epsilon = 1e-10

// Sort reorders the vertex buffer by position Z ascending, breaking
// near-equal Z by X ascending, and rewrites every index through the
// induced mapping so the triangles still connect the same vertices.
//
// The tolerance makes "equal" non-transitive: a chain of near-equal Z
// values can contain a pair that compares unequal. The sort is stable and
// carries the explicit X secondary key, so the output is deterministic
// for a given input order either way.
func (m *Mesh) Sort() {
	perm := make([]int, len(m.Verts))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		a, b := m.Verts[i].Pos, m.Verts[j].Pos
		if dz := a.Z() - b.Z(); math32.Abs(dz) > sort_epsilon {
			if dz < 0 {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.X(), b.X())
	})

	verts := make([]Vertex, len(perm))
	remap := make([]uint32, len(perm))
	for to, from := range perm {
		verts[to] = m.Verts[from]
		remap[from] = uint32(to)
	}
	m.Verts = verts
	for i, idx := range m.Indices {
		m.Indices[i] = remap[idx]
	}
}
