package liskvalidator

import (
	"bytes"
	"fmt"
	"sync"

	j "github.com/goccy/go-json"
)

const inlineSchemaID = "inline"

// Validator validates data against schema documents, compiling each schema
// once per "$id". A later document reusing an "$id" with different content
// is rejected with ErrSchemaConflict. The zero value is ready to use.
type Validator struct {
	opts []CompilerOption

	mu    sync.Mutex
	cache map[string]cachedSchema
}

type cachedSchema struct {
	schema *Schema
	// doc is the canonical encoding of the compiled document.
	doc []byte
}

// NewValidator returns a Validator whose compilers are built with opts.
func NewValidator(opts ...CompilerOption) *Validator {
	return &Validator{opts: opts}
}

// ValidateSchema compiles schema and reports schema-shape or metaschema
// errors. Nothing is cached.
func (v *Validator) ValidateSchema(schema any) error {
	_, err := v.compile(schema)
	return err
}

// Validate checks data against schema. Schemas carrying "$id" are compiled
// on first use and reused afterwards; others are compiled on every call.
func (v *Validator) Validate(schema any, data any) error {
	sch, err := v.schemaFor(schema)
	if err != nil {
		return err
	}
	return sch.Validate(data)
}

func (v *Validator) schemaFor(schema any) (*Schema, error) {
	root, err := toNode(schema)
	if err != nil {
		return nil, err
	}
	id, _ := root["$id"].(string)
	if id == "" {
		return v.compileNode(inlineSchemaID, root)
	}

	doc, err := j.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("liskvalidator: encode schema %s: %w", id, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if c, ok := v.cache[id]; ok {
		if !bytes.Equal(c.doc, doc) {
			return nil, fmt.Errorf("%w: %s", ErrSchemaConflict, id)
		}
		return c.schema, nil
	}
	sch, err := v.compileNode(id, root)
	if err != nil {
		return nil, err
	}
	if v.cache == nil {
		v.cache = make(map[string]cachedSchema)
	}
	v.cache[id] = cachedSchema{schema: sch, doc: doc}
	return sch, nil
}

func (v *Validator) compile(schema any) (*Schema, error) {
	root, err := toNode(schema)
	if err != nil {
		return nil, err
	}
	id, _ := root["$id"].(string)
	if id == "" {
		id = inlineSchemaID
	}
	return v.compileNode(id, root)
}

func (v *Validator) compileNode(id string, root Node) (*Schema, error) {
	c := NewCompiler(v.opts...)
	if err := c.addNode(id, root); err != nil {
		return nil, err
	}
	return c.Compile(id)
}
