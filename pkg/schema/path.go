package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a node by child index at each level. Object children are
// indexed by field position; an array has a single child, its item template,
// at index 0. The empty path is the root.
type Path []int

// ParsePath reads "/0/2", "0/2", "0.2" or "" (the root).
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/")
	if s == "" {
		return Path{}, nil
	}
	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "."
	}
	parts := strings.Split(s, sep)
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid path segment %q in %q", part, s)
		}
		p[i] = n
	}
	return p, nil
}

// String renders the path as "/0/2"; the root is "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, i := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

// IsRoot reports whether p addresses the root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Parent splits p into the parent path and the final index.
// ok is false for the root.
func (p Path) Parent() (parent Path, last int, ok bool) {
	if len(p) == 0 {
		return nil, 0, false
	}
	return p[:len(p)-1:len(p)-1], p[len(p)-1], true
}

// Child returns a new path one level below p. p is not modified.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}
