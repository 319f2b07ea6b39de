package liskvalidator

import (
	"fmt"

	"github.com/reoring/liskvalidator/i18n"
)

// CompileFieldNumber checks that the field number declared on parent is
// unique among its sibling properties. The constraint concerns the schema
// shape only, so the returned validator accepts any data.
func CompileFieldNumber(value any, parent Node, ctx CompileContext) (ValidateFunc, error) {
	log := logger().WithField("component", "codec:keyword:fieldNumber")
	log.Debugf("compile: value: %v", value)
	log.Debugf("compile: parent schema: %v", parent)

	path := schemaPathOf(ctx)
	if n, ok := schemaInt(value); !ok || n < MinFieldNumber || n > MaxFieldNumber {
		return nil, compileError(KeywordFieldNumber, path,
			i18n.T(i18n.CodeFieldNumberRange, nil),
			KeywordParams{"fieldNumber": value})
	}

	container, err := siblingContainer(path, ctx)
	if err != nil {
		return nil, err
	}

	fieldNumbers := collectFieldNumbers(container)
	seen := make(map[int]struct{}, len(fieldNumbers))
	for _, n := range fieldNumbers {
		seen[n] = struct{}{}
	}
	if len(seen) != len(fieldNumbers) {
		return nil, compileError(KeywordFieldNumber, path,
			i18n.T(i18n.CodeFieldNumberUnique, nil),
			FieldNumberParams{FieldNumbers: fieldNumbers})
	}
	return alwaysValid, nil
}

// siblingContainer returns the object holding the node at path and its
// siblings. Hosts that hand over the container directly skip the lookup.
func siblingContainer(path Path, ctx CompileContext) (Node, error) {
	if ctx == nil {
		return nil, fmt.Errorf("liskvalidator: fieldNumber at %q compiled without context", path.Pointer())
	}
	if c, ok := ctx.ParentContainer(); ok {
		return c, nil
	}
	v, ok := path.Parent().Resolve(ctx.RootSchema())
	if !ok {
		return nil, fmt.Errorf("liskvalidator: cannot resolve parent of %q", path.Pointer())
	}
	c, ok := AsNode(v)
	if !ok {
		return nil, fmt.Errorf("liskvalidator: parent of %q is not an object", path.Pointer())
	}
	return c, nil
}

// collectFieldNumbers gathers the field numbers of the immediate properties
// of container in key order. Properties without a field number are skipped.
func collectFieldNumbers(container Node) []int {
	var out []int
	for _, name := range sortedKeys(container) {
		prop, ok := AsNode(container[name])
		if !ok || !prop.Has(KeywordFieldNumber) {
			continue
		}
		n, ok := schemaInt(prop[KeywordFieldNumber])
		if !ok {
			continue
		}
		out = append(out, n)
	}
	return out
}
