package liskvalidator

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/liskvalidator/i18n"
	eng "github.com/reoring/liskvalidator/internal/engine"
)

// DecodeJSON decodes a JSON document into generic values. Numbers are kept
// as json.Number so that 64-bit integers are never rounded through float64.
func DecodeJSON(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("liskvalidator: invalid JSON: %w", err)
	}
	return v, nil
}

// ParseSchemaJSON decodes a JSON schema document. Objects repeating a key are
// rejected with a duplicateKey error: the decoder would otherwise keep only
// the last occurrence and hide a sibling from the fieldNumber check.
func ParseSchemaJSON(data []byte) (Node, error) {
	issues, err := eng.DetectDuplicateKeys(data, 0)
	if err != nil {
		return nil, fmt.Errorf("liskvalidator: invalid JSON: %w", err)
	}
	if len(issues) > 0 {
		errs := make([]ErrorObject, 0, len(issues))
		for _, si := range issues {
			errs = append(errs, ErrorObject{
				Keyword:    KeywordDuplicateKey,
				SchemaPath: "#" + si.Path,
				Message:    i18n.T(i18n.CodeDuplicateKey, map[string]string{"key": si.Key}),
				Params:     KeywordParams{"key": si.Key},
			})
		}
		return nil, NewValidationError(errs...)
	}
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	n, ok := AsNode(v)
	if !ok {
		return nil, errors.New("liskvalidator: schema document is not an object")
	}
	return n, nil
}

// ParseSchemaYAML decodes the first document of a YAML stream as a schema.
func ParseSchemaYAML(data []byte) (Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("liskvalidator: empty YAML document")
		}
		return nil, fmt.Errorf("liskvalidator: invalid YAML: %w", err)
	}
	m := yamlAnyToStringMap(doc)
	if m == nil {
		return nil, errors.New("liskvalidator: schema document is not an object")
	}
	return Node(m), nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
