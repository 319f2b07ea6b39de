package liskvalidator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"

	js "github.com/reoring/liskvalidator/jsonschema"
)

const (
	extensionName = "lisk"
	// resourceBase prefixes schema ids that are not absolute URLs.
	resourceBase = "lisk://schemas/"
)

var keywordMeta = jsonschema.MustCompileString("lisk-keywords.json", KeywordMetaSchema)

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithDraft selects the JSON Schema draft assumed when "$schema" is absent.
// The default is draft 2020-12.
func WithDraft(d *jsonschema.Draft) CompilerOption {
	return func(c *Compiler) {
		if d != nil {
			c.host.Draft = d
		}
	}
}

// WithAssertFormat makes "format" an assertion rather than an annotation.
func WithAssertFormat(enabled bool) CompilerOption {
	return func(c *Compiler) { c.host.AssertFormat = enabled }
}

// WithLogger sets the logger used for registration and compile events.
func WithLogger(l logrus.FieldLogger) CompilerOption {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// Compiler registers schema documents and compiles them into Schemas. It
// binds the dataType and fieldNumber keywords into the host JSON Schema
// engine. A Compiler is not safe for concurrent use.
type Compiler struct {
	host *jsonschema.Compiler
	log  logrus.FieldLogger
	// docs holds registered documents by resource URL; ids maps the ids
	// passed to AddSchema to those URLs.
	docs map[string]Node
	ids  map[string]string
}

// NewCompiler returns a Compiler with the Lisk keywords registered.
func NewCompiler(opts ...CompilerOption) *Compiler {
	host := jsonschema.NewCompiler()
	host.Draft = jsonschema.Draft2020
	host.RegisterExtension(extensionName, keywordMeta, liskExtension{})
	// Schemas are registered in memory only.
	host.LoadURL = func(s string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("liskvalidator: %w: %s", ErrSchemaNotFound, s)
	}
	c := &Compiler{
		host: host,
		log:  logger(),
		docs: make(map[string]Node),
		ids:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddSchema registers a schema document under id. doc may be a
// map[string]any, a Node, a *jsonschema.Schema or JSON bytes. The document
// is checked for schema-shape defects (dataType next to type, duplicated
// field numbers) and is not registered when one is found.
func (c *Compiler) AddSchema(id string, doc any) error {
	root, err := toNode(doc)
	if err != nil {
		return err
	}
	return c.addNode(id, root)
}

// AddSchemaJSON registers a JSON document, rejecting duplicated object keys.
func (c *Compiler) AddSchemaJSON(id string, data []byte) error {
	root, err := ParseSchemaJSON(data)
	if err != nil {
		return err
	}
	return c.addNode(id, root)
}

// AddSchemaYAML registers the first document of a YAML stream.
func (c *Compiler) AddSchemaYAML(id string, data []byte) error {
	root, err := ParseSchemaYAML(data)
	if err != nil {
		return err
	}
	return c.addNode(id, root)
}

func (c *Compiler) addNode(id string, root Node) error {
	u, err := resourceURL(id)
	if err != nil {
		return err
	}
	if err := checkSchemaShape(root); err != nil {
		c.log.WithField("schema", id).Debugf("register: rejected: %v", err)
		return err
	}
	b, err := j.Marshal(root)
	if err != nil {
		return fmt.Errorf("liskvalidator: encode schema %s: %w", id, err)
	}
	if err := c.host.AddResource(u, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("liskvalidator: add schema %s: %w", id, err)
	}
	c.docs[u] = root
	c.ids[id] = u
	c.log.WithField("schema", id).Debug("register: ok")
	return nil
}

// Compile compiles the schema registered under id. Keyword compile failures
// are returned as *ValidationError; metaschema violations reported by the
// host engine are wrapped *jsonschema.SchemaError values.
func (c *Compiler) Compile(id string) (*Schema, error) {
	u, ok := c.ids[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, id)
	}
	sch, err := c.host.Compile(u)
	if err != nil {
		c.log.WithField("schema", id).Debugf("compile: failed: %v", err)
		if ve, ok := AsValidationError(err); ok {
			return nil, ve
		}
		return nil, fmt.Errorf("liskvalidator: compile %s: %w", id, err)
	}
	docs := make(map[string]Node, len(c.docs))
	for k, v := range c.docs {
		docs[k] = v
	}
	return &Schema{id: id, host: sch, docs: docs}, nil
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of package-level schemas.
func (c *Compiler) MustCompile(id string) *Schema {
	s, err := c.Compile(id)
	if err != nil {
		panic(err)
	}
	return s
}

func resourceURL(id string) (string, error) {
	if id == "" || strings.ContainsRune(id, '#') {
		return "", fmt.Errorf("liskvalidator: invalid schema id %q", id)
	}
	u, err := url.Parse(id)
	if err != nil {
		return "", fmt.Errorf("liskvalidator: invalid schema id %q: %w", id, err)
	}
	if u.IsAbs() {
		return id, nil
	}
	return resourceBase + strings.TrimPrefix(id, "/"), nil
}

func toNode(doc any) (Node, error) {
	switch t := doc.(type) {
	case nil:
		return nil, ErrNilSchema
	case *js.Schema:
		if t == nil {
			return nil, ErrNilSchema
		}
		m, err := t.ToMap()
		if err != nil {
			return nil, fmt.Errorf("liskvalidator: encode typed schema: %w", err)
		}
		return Node(m), nil
	case []byte:
		return ParseSchemaJSON(t)
	case map[string]any:
		if t == nil {
			return nil, ErrNilSchema
		}
		return Node(t), nil
	case Node:
		if t == nil {
			return nil, ErrNilSchema
		}
		return t, nil
	default:
		return nil, errors.New("liskvalidator: schema document must be an object")
	}
}
