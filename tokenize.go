package obj2buf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errBadField marks a non-empty field that failed conversion. It is
// distinct from a short line, which only lowers the returned count.
var errBadField = errors.New("unconvertible field")

// field is the set of types a line field can tokenize into.
type field interface {
	float32 | int | string
}

// tokenize splits line on delim and converts up to len(out) fields into
// out, returning how many were produced. An empty field (two delimiters
// in a row, or a leading delimiter) yields sentinel instead of failing;
// a trailing delimiter yields nothing. skipFirst discards the first field
// before counting, which strips the "v"/"vt"/"f" line marker.
func tokenize[T field](out []T, line string, skipFirst bool, delim byte, sentinel T) (int, error) {
	rest := line
	next := func() (string, bool) {
		if rest == "" {
			return "", false
		}
		if i := strings.IndexByte(rest, delim); i >= 0 {
			item := rest[:i]
			rest = rest[i+1:]
			return item, true
		}
		item := rest
		rest = ""
		return item, true
	}

	if skipFirst {
		next()
	}
	count := 0
	for ; count < len(out); count++ {
		item, more := next()
		if !more {
			break
		}
		if item == "" {
			out[count] = sentinel
			continue
		}
		v, err := convert_field[T](item)
		if err != nil {
			return count, fmt.Errorf("%w %q", errBadField, item)
		}
		out[count] = v
	}
	return count, nil
}

func convert_field[T field](item string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		f, err := strconv.ParseFloat(item, 32)
		if err != nil {
			return v, err
		}
		*p = float32(f)
	case *int:
		n, err := strconv.Atoi(item)
		if err != nil {
			return v, err
		}
		*p = n
	case *string:
		*p = item
	}
	return v, nil
}
