package jsonschema

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// Schema is a typed Lisk schema node. It covers the keywords codec schemas
// use; anything else can be carried through Extra.
type Schema struct {
	ID     string `json:"$id,omitempty"`
	Title  string `json:"title,omitempty"`
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// Codec keywords
	DataType    string `json:"dataType,omitempty"`
	FieldNumber int    `json:"fieldNumber,omitempty"`

	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Extra keywords merged into the map form.
	Extra map[string]any `json:"-"`
}

// Object returns an object schema with the given properties.
func Object(id string, props map[string]*Schema, required ...string) *Schema {
	return &Schema{ID: id, Type: "object", Properties: props, Required: required}
}

// Field returns a primitive property declaring dataType and fieldNumber.
func Field(dataType string, fieldNumber int) *Schema {
	return &Schema{DataType: dataType, FieldNumber: fieldNumber}
}

// Bytes returns a bytes property with optional length bounds (nil = unset).
func Bytes(fieldNumber int, minLength, maxLength *int) *Schema {
	return &Schema{DataType: "bytes", FieldNumber: fieldNumber, MinLength: minLength, MaxLength: maxLength}
}

// Array returns an array property of the given item schema.
func Array(fieldNumber int, items *Schema) *Schema {
	return &Schema{Type: "array", FieldNumber: fieldNumber, Items: items}
}

// Len is a helper for MinLength/MaxLength literals.
func Len(n int) *int { return &n }

// ToMap renders the schema as the generic document form consumed by the
// validator. Numbers are decoded as json.Number.
func (s *Schema) ToMap() (map[string]any, error) {
	b, err := j.Marshal(s)
	if err != nil {
		return nil, err
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	s.mergeExtra(m)
	return m, nil
}

func (s *Schema) mergeExtra(m map[string]any) {
	if s == nil {
		return
	}
	for k, v := range s.Extra {
		m[k] = v
	}
	if props, ok := m["properties"].(map[string]any); ok {
		for name, child := range s.Properties {
			cm, ok := props[name].(map[string]any)
			if !ok {
				continue
			}
			child.mergeExtra(cm)
		}
	}
	if s.Items != nil {
		if im, ok := m["items"].(map[string]any); ok {
			s.Items.mergeExtra(im)
		}
	}
}
