package liskvalidator

import (
	"net/url"
	"strconv"
	"strings"
)

// Path is a structured JSON Pointer. Tokens are kept unescaped so that keys
// containing '/', '~' or '.' never need re-parsing.
type Path struct {
	tokens []string
}

// RootPath is the pointer to the document root.
var RootPath = Path{}

// ParsePointer parses an RFC 6901 pointer. A leading '#' (URI fragment form)
// is accepted and percent-encoding is removed.
func ParsePointer(s string) (Path, error) {
	s = strings.TrimPrefix(s, "#")
	if s == "" || s == "/" {
		return RootPath, nil
	}
	s = strings.TrimPrefix(s, "/")
	parts := strings.Split(s, "/")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.ContainsRune(p, '%') {
			u, err := url.PathUnescape(p)
			if err != nil {
				return RootPath, err
			}
			p = u
		}
		tokens = append(tokens, strings.ReplaceAll(strings.ReplaceAll(p, "~1", "/"), "~0", "~"))
	}
	return Path{tokens: tokens}, nil
}

// Field appends an object key.
func (p Path) Field(name string) Path {
	return Path{tokens: append(append(make([]string, 0, len(p.tokens)+1), p.tokens...), name)}
}

// Index appends an array index.
func (p Path) Index(i int) Path { return p.Field(strconv.Itoa(i)) }

// Parent drops the last token. The parent of the root is the root.
func (p Path) Parent() Path {
	if len(p.tokens) == 0 {
		return p
	}
	return Path{tokens: p.tokens[:len(p.tokens)-1]}
}

// Last returns the final token, or "" for the root.
func (p Path) Last() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[len(p.tokens)-1]
}

// Tokens returns a copy of the unescaped tokens.
func (p Path) Tokens() []string { return append([]string(nil), p.tokens...) }

// IsRoot reports whether p points at the document root.
func (p Path) IsRoot() bool { return len(p.tokens) == 0 }

// Pointer renders p as a JSON Pointer; the root renders as "".
func (p Path) Pointer() string {
	if len(p.tokens) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, t := range p.tokens {
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(t, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// Resolve walks doc along p through maps and slices.
func (p Path) Resolve(doc any) (any, bool) {
	cur := doc
	for _, t := range p.tokens {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[t]
			if !ok {
				return nil, false
			}
			cur = v
		case Node:
			v, ok := c[t]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(t)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
