package liskvalidator

import (
	"errors"
	"fmt"
	"strings"
)

// Keywords that produce errors owned by this package. Keywords of the host
// engine (type, required, ...) reuse their JSON Schema names.
const (
	KeywordDataType     = "dataType"
	KeywordFieldNumber  = "fieldNumber"
	KeywordDuplicateKey = "duplicateKey"

	KeywordType                 = "type"
	KeywordRequired             = "required"
	KeywordAdditionalProperties = "additionalProperties"
	KeywordMinLength            = "minLength"
	KeywordMaxLength            = "maxLength"
	KeywordFormat               = "format"
)

var (
	// ErrNilSchema is returned when a nil document is registered or validated.
	ErrNilSchema = errors.New("liskvalidator: nil schema")

	// ErrSchemaNotFound is returned by Compile for ids that were never added.
	ErrSchemaNotFound = errors.New("liskvalidator: schema not found")

	// ErrSchemaConflict is returned by Validator when a document reuses the
	// "$id" of a different, already compiled document.
	ErrSchemaConflict = errors.New("liskvalidator: conflicting schema for id")
)

// ErrorObject describes one validation failure.
type ErrorObject struct {
	Keyword      string
	InstancePath string // JSON Pointer into the validated data ("" for the root).
	SchemaPath   string // URI fragment locating the keyword, e.g. "#/properties/a/dataType".
	Params       Params
	// Message is optional; FormatError falls back to a generic text when empty.
	Message string
	// PropertyName is set for errors raised while validating property names.
	PropertyName string
}

// Param returns the named parameter, or nil when absent.
func (e ErrorObject) Param(key string) any {
	if e.Params == nil {
		return nil
	}
	v, _ := e.Params.Get(key)
	return v
}

// String renders the error with FormatError.
func (e ErrorObject) String() string { return FormatError(e) }

// ValidationError is the aggregate error returned for both compile-time and
// data failures. It is immutable: the combined message is derived from the
// wrapped errors each time it is requested.
type ValidationError struct {
	errs []ErrorObject
}

// NewValidationError wraps errs, preserving their order.
func NewValidationError(errs ...ErrorObject) *ValidationError {
	cp := make([]ErrorObject, len(errs))
	copy(cp, errs)
	return &ValidationError{errs: cp}
}

// Errors returns a copy of the wrapped errors in reporting order.
func (e *ValidationError) Errors() []ErrorObject {
	if e == nil {
		return nil
	}
	cp := make([]ErrorObject, len(e.errs))
	copy(cp, e.errs)
	return cp
}

// Len reports the number of wrapped errors.
func (e *ValidationError) Len() int {
	if e == nil {
		return 0
	}
	return len(e.errs)
}

// Error lists every wrapped error, one per line.
func (e *ValidationError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Lisk validator found %d error[s]:\n", e.Len())
	for i, it := range e.Errors() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatError(it))
	}
	return b.String()
}

// HasKeyword reports whether any wrapped error carries the keyword.
func (e *ValidationError) HasKeyword(keyword string) bool {
	if e == nil {
		return false
	}
	for _, it := range e.errs {
		if it.Keyword == keyword {
			return true
		}
	}
	return false
}

// AsValidationError extracts a *ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) && ve != nil {
		return ve, true
	}
	return nil, false
}

// AppendErrors appends more to dst, initializing the slice when needed.
func AppendErrors(dst []ErrorObject, more ...ErrorObject) []ErrorObject {
	if dst == nil {
		dst = []ErrorObject{}
	}
	return append(dst, more...)
}

// compileError builds the single-entry aggregate raised by keyword compilers.
// p locates the node declaring keyword.
func compileError(keyword string, p Path, msg string, params Params) *ValidationError {
	return NewValidationError(ErrorObject{
		Keyword:    keyword,
		SchemaPath: "#" + p.Field(keyword).Pointer(),
		Message:    msg,
		Params:     params,
	})
}
