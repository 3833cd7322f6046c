package obj2buf

import "fmt"

// ref is a descriptor's attribute indices in canonical form: position,
// texcoord, normal, 1-based, 0 for absent. Keying the cache on the
// canonical triple rather than the descriptor text means spellings like
// "3//1" and "3/0/1" intern to the same vertex.
type ref [3]int

// interner resolves face-vertex descriptors against the attribute arrays
// and owns the growing buffers. Every index it appends is either a cache
// hit or the slot of the vertex it just created, so the index buffer
// never references past the end of the vertex buffer.
type interner struct {
	positions []vec3
	texcoords []vec2
	normals   []vec3
	opt       Options
	cache     map[ref]uint32
	mesh      *Mesh
}

// add interns one descriptor and appends its slot to the index buffer.
func (in *interner) add(desc string) error {
	r, n, err := split_descriptor(desc)
	if err != nil {
		return err
	}

	// Canonicalize: zero the slots the descriptor never spelled out and
	// the ones configuration drops, so equivalent descriptors share one
	// cache key and one vertex.
	key := ref{r[0]}
	if n > 1 && r[1] > 0 && !in.opt.NoTexcoords {
		key[1] = r[1]
	}
	if n > 2 && r[2] > 0 && !in.opt.NoNormals {
		key[2] = r[2]
	}

	if slot, hit := in.cache[key]; hit {
		in.mesh.Indices = append(in.mesh.Indices, slot)
		return nil
	}

	var v Vertex
	if key[0] < 1 || key[0] > len(in.positions) {
		return fmt.Errorf("%w: position %d of %d in %q", ErrRefRange, key[0], len(in.positions), desc)
	}
	v.Pos = in.positions[key[0]-1]
	if key[1] > 0 {
		if key[1] > len(in.texcoords) {
			return fmt.Errorf("%w: texcoord %d of %d in %q", ErrRefRange, key[1], len(in.texcoords), desc)
		}
		v.UV = in.texcoords[key[1]-1]
		v.HasUV = true
	}
	if key[2] > 0 {
		if key[2] > len(in.normals) {
			return fmt.Errorf("%w: normal %d of %d in %q", ErrRefRange, key[2], len(in.normals), desc)
		}
		v.Normal = in.normals[key[2]-1]
		v.HasNormal = true
	}

	slot := uint32(len(in.mesh.Verts))
	in.mesh.Verts = append(in.mesh.Verts, v)
	in.mesh.Indices = append(in.mesh.Indices, slot)
	in.cache[key] = slot
	return nil
}
