package engine

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string // JSON Pointer of the object holding the duplicated key.
	Key     string
	Message string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// DetectDuplicateKeys scans a JSON document token by token and reports every
// object key that appears more than once in the same object. maxIssues <= 0
// means unlimited. Unterminated documents yield io.ErrUnexpectedEOF.
func DetectDuplicateKeys(data []byte, maxIssues int) ([]SimpleIssue, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var issues []SimpleIssue
	var stack []dupFrame

	// valuePath returns the location of the value starting at the current
	// token and consumes the slot in the enclosing container.
	valuePath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := joinPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		top.expectingKey = true
		return joinPointer(top.path, top.pendingKey)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return issues, err
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				p := valuePath()
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: p})
			case '[':
				p := valuePath()
				stack = append(stack, dupFrame{kind: kindArray, path: p})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						issues = append(issues, SimpleIssue{
							Code:    "duplicate_key",
							Path:    top.path,
							Key:     v,
							Message: "key '" + v + "' duplicated",
						})
						if maxIssues > 0 && len(issues) >= maxIssues {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.pendingKey = v
					top.expectingKey = false
					continue
				}
			}
			valuePath()
		default:
			valuePath()
		}
	}
	if len(stack) > 0 {
		return issues, io.ErrUnexpectedEOF
	}
	return issues, nil
}

func joinPointer(base, token string) string {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	return base + "/" + strings.ReplaceAll(strings.ReplaceAll(token, "~", "~0"), "/", "~1")
}
