package liskvalidator

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/liskvalidator/i18n"
)

// liskExtension binds the keywords into the host engine. It runs for every
// subschema the host compiles, so the sibling and type checks also cover
// positions the registration walk does not know about. The host does not
// expose where a subschema sits in its document: locations of errors raised
// here are relative to the subschema itself.
type liskExtension struct{}

func (liskExtension) Compile(_ jsonschema.CompilerContext, m map[string]interface{}) (jsonschema.ExtSchema, error) {
	n := Node(m)
	if err := checkPropertyFieldNumbers(n, n, RootPath); err != nil {
		return nil, err
	}
	v, ok := n[KeywordDataType]
	if !ok {
		return nil, nil
	}
	if name, _ := v.(string); !DataType(name).Valid() {
		return nil, fmt.Errorf("liskvalidator: unknown dataType %v", v)
	}
	validate, err := CompileDataType(v, n, compileContext{root: n, path: RootPath})
	if err != nil {
		return nil, err
	}
	return dataTypeSchema{validate: validate}, nil
}

type dataTypeSchema struct {
	validate ValidateFunc
}

func (s dataTypeSchema) Validate(ctx jsonschema.ValidationContext, v interface{}) error {
	ok, errs := s.validate(v)
	if ok {
		return nil
	}
	msg := i18n.T(i18n.CodeUnspecified, nil)
	if len(errs) > 0 && errs[0].Message != "" {
		msg = errs[0].Message
	}
	return ctx.Error(KeywordDataType, "%s", msg)
}
