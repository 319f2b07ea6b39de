package liskvalidator

// ValidateFunc checks one instance value against a compiled keyword. On
// failure it returns false and the errors describing why; the slice is owned
// by the caller.
type ValidateFunc func(data any) (bool, []ErrorObject)

// CompileContext is the narrow view of the host engine that keyword
// compilers rely on.
type CompileContext interface {
	// SchemaPath is the location of the node being compiled.
	SchemaPath() Path
	// RootSchema is the document the node belongs to.
	RootSchema() Node
	// ParentContainer returns the object holding the node and its siblings
	// (for a property, the "properties" map) when the host knows it.
	ParentContainer() (Node, bool)
}

// KeywordCompiler compiles a keyword value declared on parent.
type KeywordCompiler func(value any, parent Node, ctx CompileContext) (ValidateFunc, error)

// Keywords maps each custom keyword to its compiler.
var Keywords = map[string]KeywordCompiler{
	KeywordDataType:    CompileDataType,
	KeywordFieldNumber: CompileFieldNumber,
}

// Field number bounds accepted by the codec.
const (
	MinFieldNumber = 1
	MaxFieldNumber = 18999
)

// KeywordMetaSchema constrains the custom keywords. It is registered with the
// host engine alongside the keyword compilers.
const KeywordMetaSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"properties": {
		"dataType": {
			"title": "Lisk Codec Data Type",
			"type": "string",
			"enum": ["bytes", "uint32", "sint32", "uint64", "sint64", "string", "boolean"]
		},
		"fieldNumber": {
			"title": "Lisk Codec Field Number",
			"type": "number",
			"minimum": 1,
			"maximum": 18999
		}
	}
}`

// compileContext is the CompileContext handed out by the registration walk.
type compileContext struct {
	root      Node
	path      Path
	container Node
}

func (c compileContext) SchemaPath() Path { return c.path }
func (c compileContext) RootSchema() Node { return c.root }
func (c compileContext) ParentContainer() (Node, bool) {
	return c.container, c.container != nil
}

func schemaPathOf(ctx CompileContext) Path {
	if ctx == nil {
		return RootPath
	}
	return ctx.SchemaPath()
}

// alwaysValid is the runtime validator of shape-only keywords.
func alwaysValid(any) (bool, []ErrorObject) { return true, nil }
