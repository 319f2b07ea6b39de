package liskvalidator

import (
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled schema ready to validate data.
type Schema struct {
	id   string
	host *jsonschema.Schema
	// docs are the registered documents by resource URL, used to recover
	// structured parameters from host errors.
	docs map[string]Node
}

// ID returns the id the schema was registered and compiled under.
func (s *Schema) ID() string { return s.id }

// Validate checks data against the schema. data must be JSON shaped
// (map[string]any, []any, string, bool, json.Number or Go numbers) and may
// carry []byte and *big.Int leaves for the codec data types. Failures are
// returned as *ValidationError.
func (s *Schema) Validate(data any) error {
	if s == nil || s.host == nil {
		return ErrNilSchema
	}
	err := s.host.Validate(data)
	if err == nil {
		return nil
	}
	var hostErr *jsonschema.ValidationError
	if !errors.As(err, &hostErr) {
		// InvalidJSONTypeError and friends.
		return fmt.Errorf("liskvalidator: validate %s: %w", s.id, err)
	}
	logger().WithField("schema", s.id).Debugf("validate: %v", hostErr)
	return NewValidationError(translate(hostErr, data, s.docs)...)
}

// Errors returns the failures of data as a slice; nil means valid. Errors
// that are not validation failures are reported as a single entry without
// keyword.
func (s *Schema) Errors(data any) []ErrorObject {
	err := s.Validate(data)
	if err == nil {
		return nil
	}
	if ve, ok := AsValidationError(err); ok {
		return ve.Errors()
	}
	return []ErrorObject{{Message: err.Error()}}
}
