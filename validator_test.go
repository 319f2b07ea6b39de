package liskvalidator_test

import (
	"errors"
	"sync"
	"testing"

	lv "github.com/reoring/liskvalidator"
)

func accountSchema(maxLength int) map[string]any {
	return map[string]any{
		"$id":  "/lisk/account",
		"type": "object",
		"properties": map[string]any{
			"address": map[string]any{"dataType": "bytes", "fieldNumber": 1, "maxLength": maxLength},
		},
	}
}

func TestValidator_CachesByID(t *testing.T) {
	var v lv.Validator
	data := map[string]any{"address": make([]byte, 20)}
	if err := v.Validate(accountSchema(20), data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same document: the first compilation is reused.
	if err := v.Validate(accountSchema(20), data); err != nil {
		t.Fatalf("cached schema expected, got %v", err)
	}
	// Same $id with different content is a conflict, not a silent reuse.
	if err := v.Validate(accountSchema(10), data); !errors.Is(err, lv.ErrSchemaConflict) {
		t.Fatalf("expected ErrSchemaConflict, got %v", err)
	}

	// ValidateSchema never reads or fills the cache.
	if err := v.ValidateSchema(accountSchema(10)); err != nil {
		t.Fatalf("ValidateSchema: %v", err)
	}
}

func TestValidator_InlineSchemasCompiledPerCall(t *testing.T) {
	v := lv.NewValidator()
	schema := func(dt string) map[string]any {
		return map[string]any{"properties": map[string]any{"x": map[string]any{"dataType": dt, "fieldNumber": 1}}}
	}
	if err := v.Validate(schema("string"), map[string]any{"x": "s"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := v.Validate(schema("boolean"), map[string]any{"x": "s"})
	ve, ok := lv.AsValidationError(err)
	if !ok || ve.Errors()[0].Param("dataType") != "boolean" {
		t.Fatalf("expected boolean mismatch, got %v", err)
	}
}

func TestValidator_ValidateSchema(t *testing.T) {
	v := lv.NewValidator()
	bad := map[string]any{
		"properties": map[string]any{
			"a": map[string]any{"dataType": "uint32", "fieldNumber": 5},
			"b": map[string]any{"dataType": "uint32", "fieldNumber": 5},
		},
	}
	err := v.ValidateSchema(bad)
	ve, ok := lv.AsValidationError(err)
	if !ok || !ve.HasKeyword("fieldNumber") {
		t.Fatalf("expected fieldNumber error, got %v", err)
	}
	if err := v.ValidateSchema(nil); !errors.Is(err, lv.ErrNilSchema) {
		t.Fatalf("nil schema: %v", err)
	}
}

func TestValidator_Concurrent(t *testing.T) {
	v := lv.NewValidator()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			size := 20
			if i%2 == 1 {
				size = 21
			}
			err := v.Validate(accountSchema(20), map[string]any{"address": make([]byte, size)})
			if (err != nil) != (size == 21) {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected result: %v", err)
	}
}
