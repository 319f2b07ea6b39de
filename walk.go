package liskvalidator

// Subschema-bearing keywords visited by the registration walk.
var (
	schemaKeywords = []string{
		"additionalProperties", "additionalItems", "contains", "not",
		"if", "then", "else", "propertyNames",
		"unevaluatedProperties", "unevaluatedItems",
	}
	schemaListKeywords = []string{"allOf", "anyOf", "oneOf", "prefixItems"}
	// Values that are not schemas, such as the property lists of draft-07
	// "dependencies", are skipped.
	schemaMapKeywords = []string{"patternProperties", "$defs", "definitions", "dependentSchemas", "dependencies"}
)

// checkSchemaShape runs the compile-time half of the custom keywords over
// every subschema of root and returns the first failure. Field numbers are
// checked for each property, with the enclosing properties map as the
// sibling container.
func checkSchemaShape(root Node) error {
	w := shapeWalker{root: root}
	return w.walk(root, RootPath)
}

type shapeWalker struct {
	root Node
}

func (w shapeWalker) walk(n Node, p Path) error {
	if v, ok := n[KeywordDataType]; ok {
		if _, err := CompileDataType(v, n, compileContext{root: w.root, path: p}); err != nil {
			return err
		}
	}

	if err := checkPropertyFieldNumbers(w.root, n, p); err != nil {
		return err
	}
	if props, ok := n.Child("properties"); ok {
		for _, name := range sortedKeys(props) {
			if child, ok := AsNode(props[name]); ok {
				if err := w.walk(child, p.Field("properties").Field(name)); err != nil {
					return err
				}
			}
		}
	}

	// items is a schema in 2020-12 and may be a list in older drafts.
	if err := w.walkAny(n["items"], p.Field("items")); err != nil {
		return err
	}
	for _, kw := range schemaKeywords {
		if child, ok := n.Child(kw); ok {
			if err := w.walk(child, p.Field(kw)); err != nil {
				return err
			}
		}
	}
	for _, kw := range schemaListKeywords {
		if err := w.walkAny(n[kw], p.Field(kw)); err != nil {
			return err
		}
	}
	for _, kw := range schemaMapKeywords {
		m, ok := n.Child(kw)
		if !ok {
			continue
		}
		for _, name := range sortedKeys(m) {
			if err := w.walkAny(m[name], p.Field(kw).Field(name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w shapeWalker) walkAny(v any, p Path) error {
	switch t := v.(type) {
	case []any:
		for i, it := range t {
			if child, ok := AsNode(it); ok {
				if err := w.walk(child, p.Index(i)); err != nil {
					return err
				}
			}
		}
	default:
		if child, ok := AsNode(v); ok {
			return w.walk(child, p)
		}
	}
	return nil
}

// checkPropertyFieldNumbers compiles the fieldNumber of every property of n,
// located at p within root, against its siblings.
func checkPropertyFieldNumbers(root, n Node, p Path) error {
	props, ok := n.Child("properties")
	if !ok {
		return nil
	}
	base := p.Field("properties")
	for _, name := range sortedKeys(props) {
		child, ok := AsNode(props[name])
		if !ok {
			continue
		}
		v, ok := child[KeywordFieldNumber]
		if !ok {
			continue
		}
		ctx := compileContext{root: root, path: base.Field(name), container: props}
		if _, err := CompileFieldNumber(v, child, ctx); err != nil {
			return err
		}
	}
	return nil
}
