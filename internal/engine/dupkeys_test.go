package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectDuplicateKeys_Nested(t *testing.T) {
	data := []byte(`{
		"$id": "/block",
		"properties": {
			"height": {"dataType": "uint32", "fieldNumber": 1},
			"height": {"dataType": "uint32", "fieldNumber": 2},
			"items": {"type": "array", "items": [{"a": 1, "a": 2}]}
		}
	}`)
	got, err := DetectDuplicateKeys(data, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []SimpleIssue{
		{Code: "duplicate_key", Path: "/properties", Key: "height", Message: "key 'height' duplicated"},
		{Code: "duplicate_key", Path: "/properties/items/items/0", Key: "a", Message: "key 'a' duplicated"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectDuplicateKeys_NoneAndLimit(t *testing.T) {
	got, err := DetectDuplicateKeys([]byte(`{"a":{"b":1},"c":[{"b":1},{"b":2}]}`), 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no issues, got %v (err=%v)", got, err)
	}
	got, err = DetectDuplicateKeys([]byte(`{"a":1,"a":2,"a":3}`), 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected a single issue, got %v (err=%v)", got, err)
	}
}

func TestDetectDuplicateKeys_SyntaxError(t *testing.T) {
	if _, err := DetectDuplicateKeys([]byte(`{"a":`), 0); err == nil {
		t.Fatalf("expected syntax error")
	}
}
