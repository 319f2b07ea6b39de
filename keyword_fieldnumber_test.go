package liskvalidator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	lv "github.com/reoring/liskvalidator"
)

// rootOnlyContext resolves siblings through the root document.
type rootOnlyContext struct {
	root lv.Node
	path lv.Path
}

func (c rootOnlyContext) SchemaPath() lv.Path { return c.path }
func (c rootOnlyContext) RootSchema() lv.Node { return c.root }
func (c rootOnlyContext) ParentContainer() (lv.Node, bool) { return nil, false }

func mustPointer(t *testing.T, s string) lv.Path {
	t.Helper()
	p, err := lv.ParsePointer(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return p
}

func TestCompileFieldNumber_Duplicate(t *testing.T) {
	root := lv.Node{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"dataType": "uint32", "fieldNumber": 5},
			"b": map[string]any{"dataType": "string", "fieldNumber": 5},
		},
	}
	ctx := rootOnlyContext{root: root, path: mustPointer(t, "/properties/b")}
	parent, _ := lv.AsNode(root["properties"].(map[string]any)["b"])

	_, err := lv.CompileFieldNumber(5, parent, ctx)
	ve, ok := lv.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	e := ve.Errors()[0]
	if e.Keyword != "fieldNumber" {
		t.Fatalf("keyword = %q", e.Keyword)
	}
	if e.SchemaPath != "#/properties/b/fieldNumber" {
		t.Fatalf("schemaPath = %q", e.SchemaPath)
	}
	if diff := cmp.Diff([]int{5, 5}, e.Param("fieldNumbers")); diff != "" {
		t.Fatalf("fieldNumbers (-want +got):\n%s", diff)
	}
	if e.Message != "Value must be unique across all properties on same level" {
		t.Fatalf("message = %q", e.Message)
	}
}

func TestCompileFieldNumber_UniqueAcceptsAnyData(t *testing.T) {
	root := lv.Node{
		"properties": map[string]any{
			"a": map[string]any{"fieldNumber": 1},
			"b": map[string]any{"fieldNumber": 2},
			"c": map[string]any{"fieldNumber": 3},
			"d": map[string]any{"type": "string"},
		},
	}
	ctx := rootOnlyContext{root: root, path: mustPointer(t, "/properties/a")}
	fn, err := lv.CompileFieldNumber(1, lv.Node{"fieldNumber": 1}, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range []any{nil, 1, "x", map[string]any{}} {
		if ok, errs := fn(v); !ok || errs != nil {
			t.Fatalf("validator rejected %#v", v)
		}
	}
}

func TestCompileFieldNumber_KeyWithSlash(t *testing.T) {
	root := lv.Node{
		"properties": map[string]any{
			"a/b": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"x.y": map[string]any{"fieldNumber": 1},
					"z":   map[string]any{"fieldNumber": 1},
				},
			},
		},
	}
	ctx := rootOnlyContext{root: root, path: lv.RootPath.Field("properties").Field("a/b").Field("properties").Field("x.y")}
	_, err := lv.CompileFieldNumber(1, lv.Node{"fieldNumber": 1}, ctx)
	ve, ok := lv.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := ve.Errors()[0].SchemaPath; got != "#/properties/a~1b/properties/x.y/fieldNumber" {
		t.Fatalf("schemaPath = %q", got)
	}
}

func TestCompileFieldNumber_OutOfRange(t *testing.T) {
	for _, v := range []any{0, 19000, 1.5, "1"} {
		_, err := lv.CompileFieldNumber(v, lv.Node{}, rootOnlyContext{root: lv.Node{}})
		if ve, ok := lv.AsValidationError(err); !ok || !ve.HasKeyword("fieldNumber") {
			t.Errorf("fieldNumber %#v: expected compile error, got %v", v, err)
		}
	}
}

func TestCompileFieldNumber_NoContext(t *testing.T) {
	if _, err := lv.CompileFieldNumber(1, lv.Node{}, nil); err == nil {
		t.Fatalf("expected error without compile context")
	}
}
