package obj2buf

import "testing"

func TestSortTieBreakByX(t *testing.T) {
	// The last two Z values land on the same float32 and must be
	// ordered by X instead.
	mesh := convert(t, `v 0 0 2
v 5 0 1
v -1 0 1.0000000001
f 1 2 3
`, Options{Sort: true})

	want := []vec3{{-1, 0, 1}, {5, 0, 1}, {0, 0, 2}}
	for i, v := range mesh.Verts {
		if v.Pos != want[i] {
			t.Fatalf("vert %d = %v, want %v", i, v.Pos, want[i])
		}
	}
	want_indices := []uint32{2, 1, 0}
	for i, idx := range mesh.Indices {
		if idx != want_indices[i] {
			t.Fatalf("indices = %v, want %v", mesh.Indices, want_indices)
		}
	}
}

func TestSortPreservesTopology(t *testing.T) {
	src := `v 0 0 3
v 1 0 1
v 0 1 2
v 1 1 0
v 2 0 1
f 1 2 3 4
f 2 5 4
f 1 3 5
`
	before := convert(t, src, Options{}).Triangles()
	after := convert(t, src, Options{Sort: true}).Triangles()

	if len(before) != len(after) {
		t.Fatalf("triangle count changed: %d -> %d", len(before), len(after))
	}
	// Remapping relocates vertices but each triangle must still connect
	// the same vertex contents in the same order.
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("triangle %d changed:\n%+v\n%+v", i, before[i], after[i])
		}
	}
}

func TestSortIsStable(t *testing.T) {
	// Identical Z and X: first-seen order must survive.
	mesh := &Mesh{
		Verts: []Vertex{
			{Pos: vec3{1, 0, 0}, Normal: vec3{1, 0, 0}, HasNormal: true},
			{Pos: vec3{1, 1, 0}, Normal: vec3{0, 1, 0}, HasNormal: true},
			{Pos: vec3{1, 2, 0}, Normal: vec3{0, 0, 1}, HasNormal: true},
		},
		Indices: []uint32{0, 1, 2},
	}
	mesh.Sort()
	want := []vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, v := range mesh.Verts {
		if v.Normal != want[i] {
			t.Fatalf("vert %d normal = %v, want %v", i, v.Normal, want[i])
		}
	}
}

func TestSortNearEqualChain(t *testing.T) {
	// a~b and b~c inside tolerance while a and c compare unequal: the
	// comparator is not a strict weak order there. The stable sort still
	// terminates and must keep the buffers consistent.
	mesh := &Mesh{
		Verts: []Vertex{
			{Pos: vec3{3, 0, 0}},
			{Pos: vec3{2, 0, 6e-11}},
			{Pos: vec3{1, 0, 1.2e-10}},
		},
		Indices: []uint32{0, 1, 2},
	}
	mesh.Sort()

	seen := map[vec3]bool{}
	for _, v := range mesh.Verts {
		seen[v.Pos] = true
	}
	if len(seen) != 3 {
		t.Fatalf("sort lost vertices: %+v", mesh.Verts)
	}
	tri := map[vec3]bool{}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Verts) {
			t.Fatalf("index %d out of range", idx)
		}
		tri[mesh.Verts[idx].Pos] = true
	}
	if len(tri) != 3 {
		t.Fatalf("triangle connectivity changed: %v", mesh.Indices)
	}
}

func TestSortEmptyMesh(t *testing.T) {
	mesh := &Mesh{}
	mesh.Sort()
	if len(mesh.Verts) != 0 || len(mesh.Indices) != 0 {
		t.Fatalf("empty mesh grew: %+v", mesh)
	}
}
