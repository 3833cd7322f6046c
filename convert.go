package obj2buf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Conversion failures. Every one aborts the whole run before any output
// exists; the wrapped message carries the offending line or descriptor.
var (
	ErrMalformedAttribute  = errors.New("malformed attribute line")
	ErrNoPositions         = errors.New("no vertex positions")
	ErrUnexpectedEOF       = errors.New("unexpected end of stream")
	ErrFaceDegree          = errors.New("faces must be triangles or quads")
	ErrMalformedDescriptor = errors.New("malformed vertex descriptor")
	ErrRefRange            = errors.New("attribute reference out of range")
)

// line_state is the single line of lookahead carried across the parsing
// phases: the attribute block readers stop on the first line that belongs
// to the next phase and leave it here for that phase to consume.
type line_state struct {
	scanner *bufio.Scanner
	line    string
	err     error
	eof     bool
}

func (st *line_state) next() bool {
	if st.scanner.Scan() {
		st.line = st.scanner.Text()
		return true
	}
	st.err = st.scanner.Err()
	st.eof = true
	return false
}

// blank reports lines that carry no statement: too short to hold a
// two-character marker, or a comment.
func blank(line string) bool {
	return len(line) < 2 || line[0] == '#'
}

// read_attribute_block consumes the maximal contiguous run of lines
// starting with prefix, calling push with the parsed values of each.
// Blank lines and comments inside the run are skipped. The first
// substantive line with a different prefix is left as the lookahead, so
// an absent optional block costs nothing. A matching line that parses to
// fewer than min values, or fails conversion, aborts the run.
func read_attribute_block(st *line_state, prefix string, min int, push func([3]float)) error {
	for {
		switch {
		case blank(st.line):
		case st.line[:2] != prefix:
			return nil
		default:
			var vals [3]float
			n, err := tokenize(vals[:], st.line, true, ' ', 0)
			if err != nil || n < min {
				return fmt.Errorf("%w: %q", ErrMalformedAttribute, st.line)
			}
			push(vals)
		}
		if !st.next() {
			return st.err
		}
	}
}

// Convert runs the whole pipeline over src: the three attribute blocks
// (positions mandatory, texcoords and normals optional, in that order),
// then the face lines, assembled through the interner into a Mesh. The
// first violated invariant aborts with its error; nothing partial is
// returned.
func Convert(src io.Reader, opt Options) (*Mesh, error) {
	st := &line_state{scanner: bufio.NewScanner(src)}

	var (
		positions []vec3
		texcoords []vec2
		normals   []vec3
	)
	blocks := []struct {
		prefix string
		min    int
		push   func([3]float)
		after  string
	}{
		{"v ", 3, func(v [3]float) { positions = append(positions, vec3{v[0], v[1], v[2]}) }, "vertex positions"},
		{"vt", 2, func(v [3]float) { texcoords = append(texcoords, vec2{v[0], v[1]}) }, "texture coordinates"},
		{"vn", 3, func(v [3]float) { normals = append(normals, vec3{v[0], v[1], v[2]}) }, "vertex normals"},
	}
	for i, b := range blocks {
		if err := read_attribute_block(st, b.prefix, b.min, b.push); err != nil {
			return nil, err
		}
		if i == 0 && len(positions) == 0 {
			return nil, ErrNoPositions
		}
		// Face data must follow, so running dry here is fatal.
		if st.eof {
			return nil, fmt.Errorf("%w after %s", ErrUnexpectedEOF, b.after)
		}
	}

	in := interner{
		positions: positions,
		texcoords: texcoords,
		normals:   normals,
		opt:       opt,
		cache:     make(map[ref]uint32),
		mesh:      &Mesh{},
	}
	for {
		// Anything that is not a face statement is skipped here:
		// groups, materials, smoothing groups and the like are not
		// our problem.
		if !blank(st.line) && st.line[0] == 'f' {
			descs, err := assemble_face(st.line)
			if err != nil {
				return nil, err
			}
			for _, desc := range descs {
				if err := in.add(desc); err != nil {
					return nil, err
				}
			}
		}
		if !st.next() {
			break
		}
	}
	if st.err != nil {
		return nil, st.err
	}

	if opt.Sort {
		in.mesh.Sort()
	}
	return in.mesh, nil
}
