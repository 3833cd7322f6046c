package obj2buf

import "fmt"

// assemble_face splits a face line into its raw vertex descriptors and
// triangulates. A triangle passes through; a quad (a,b,c,d) is split on
// the fixed diagonal into (a,b,c) and (a,c,d). That diagonal is never
// chosen geometrically, so a non-planar or non-convex quad can come out
// folded; acceptable for the meshes this tool targets.
func assemble_face(line string) ([]string, error) {
	// One slot past a quad so an oversized face is detected instead of
	// silently truncated.
	var descs [5]string
	deg, _ := tokenize(descs[:], line, true, ' ', "")
	if deg != 3 && deg != 4 {
		return nil, fmt.Errorf("%w: %q", ErrFaceDegree, line)
	}
	if deg == 4 {
		return []string{descs[0], descs[1], descs[2], descs[0], descs[2], descs[3]}, nil
	}
	return descs[:3:3], nil
}

// split_descriptor tokenizes one p[/t][/n] descriptor into its 1-based
// attribute indices. Absent fields come back 0; n tells how many fields
// the descriptor spelled out at all, which is what gates whether the
// texcoord and normal slots even exist for this vertex.
func split_descriptor(desc string) (r ref, n int, err error) {
	n, err = tokenize(r[:], desc, false, '/', 0)
	if err != nil || n <= 0 {
		return r, n, fmt.Errorf("%w: %q", ErrMalformedDescriptor, desc)
	}
	return r, n, nil
}
