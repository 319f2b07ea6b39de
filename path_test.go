package liskvalidator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	lv "github.com/reoring/liskvalidator"
)

func TestParsePointer_RoundTrip(t *testing.T) {
	cases := []struct {
		in     string
		tokens []string
		out    string
	}{
		{"", nil, ""},
		{"#", nil, ""},
		{"#/properties/a~1b/x.y", []string{"properties", "a/b", "x.y"}, "/properties/a~1b/x.y"},
		{"/tilde~0key", []string{"tilde~key"}, "/tilde~0key"},
		{"#/properties/a%20b", []string{"properties", "a b"}, "/properties/a b"},
	}
	for _, tc := range cases {
		p, err := lv.ParsePointer(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.tokens, p.Tokens(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("tokens of %q (-want +got):\n%s", tc.in, diff)
		}
		if got := p.Pointer(); got != tc.out {
			t.Errorf("Pointer(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestPath_Navigation(t *testing.T) {
	p := lv.RootPath.Field("items").Index(2).Field("a")
	if p.Pointer() != "/items/2/a" || p.Last() != "a" {
		t.Fatalf("unexpected path %q", p)
	}
	if !p.Parent().Parent().Parent().IsRoot() {
		t.Fatalf("expected root after three Parent calls")
	}
	if !lv.RootPath.Parent().IsRoot() {
		t.Fatalf("parent of root must be root")
	}
}

func TestPath_Resolve(t *testing.T) {
	doc := map[string]any{
		"properties": lv.Node{
			"list": map[string]any{"items": []any{map[string]any{"x": 1}}},
		},
	}
	v, ok := lv.RootPath.Field("properties").Field("list").Field("items").Index(0).Field("x").Resolve(doc)
	if !ok || v != 1 {
		t.Fatalf("Resolve = %v, %v", v, ok)
	}
	if _, ok := lv.RootPath.Field("properties").Field("missing").Resolve(doc); ok {
		t.Fatalf("missing key must not resolve")
	}
	if _, ok := lv.RootPath.Field("properties").Field("list").Field("items").Index(3).Resolve(doc); ok {
		t.Fatalf("out of range index must not resolve")
	}
}
