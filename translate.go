package liskvalidator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/liskvalidator/i18n"
)

// translate flattens a host validation error into ErrorObjects. Parameters
// are rebuilt from the schema node that failed, looked up in docs through
// the absolute keyword location, and from the offending instance value.
func translate(root *jsonschema.ValidationError, data any, docs map[string]Node) []ErrorObject {
	var out []ErrorObject
	for _, leaf := range leaves(root, nil) {
		out = append(out, translateLeaf(leaf, data, docs)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].InstancePath != out[j].InstancePath {
			return out[i].InstancePath < out[j].InstancePath
		}
		return out[i].SchemaPath < out[j].SchemaPath
	})
	return out
}

func leaves(e *jsonschema.ValidationError, dst []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if e == nil {
		return dst
	}
	if len(e.Causes) == 0 {
		return append(dst, e)
	}
	for _, c := range e.Causes {
		dst = leaves(c, dst)
	}
	return dst
}

func translateLeaf(leaf *jsonschema.ValidationError, data any, docs map[string]Node) []ErrorObject {
	instPath, err := ParsePointer(leaf.InstanceLocation)
	if err != nil {
		instPath = RootPath
	}
	base := ErrorObject{InstancePath: instPath.Pointer(), Message: leaf.Message}

	resURL, frag, _ := strings.Cut(leaf.AbsoluteKeywordLocation, "#")
	kwPath, err := ParsePointer(frag)
	if err != nil {
		kwPath = RootPath
	}
	base.Keyword = kwPath.Last()
	base.SchemaPath = "#" + kwPath.Pointer()
	if base.Keyword == "" {
		if p, err := ParsePointer(leaf.KeywordLocation); err == nil {
			base.Keyword = p.Last()
		}
	}

	doc, ok := docs[resURL]
	if !ok {
		return []ErrorObject{base}
	}
	nv, ok := kwPath.Parent().Resolve(map[string]any(doc))
	if !ok {
		return []ErrorObject{base}
	}
	node, ok := AsNode(nv)
	if !ok {
		return []ErrorObject{base}
	}
	value, _ := instPath.Resolve(data)

	switch base.Keyword {
	case KeywordDataType:
		_, errs := newDataTypeValidator(node[KeywordDataType], node)(value)
		if len(errs) == 0 {
			return []ErrorObject{base}
		}
		for i := range errs {
			errs[i].InstancePath = base.InstancePath
			errs[i].SchemaPath = base.SchemaPath
		}
		return errs
	case KeywordType:
		t := typeNames(node[KeywordType])
		base.Params = KeywordParams{"type": t}
		base.Message = i18n.T(i18n.CodeTypeMismatch, map[string]string{"type": t})
	case KeywordRequired:
		return missingProperties(base, node, value)
	case KeywordAdditionalProperties:
		return extraneousProperties(base, node, value)
	case KeywordMinLength, KeywordMaxLength:
		limit, _ := node.Int(base.Keyword)
		code := i18n.CodeTooFewCharacters
		if base.Keyword == KeywordMaxLength {
			code = i18n.CodeTooManyCharacters
		}
		base.Params = KeywordParams{"limit": limit}
		base.Message = i18n.T(code, map[string]string{"limit": strconv.Itoa(limit)})
	case KeywordFormat:
		f := fmt.Sprint(node[KeywordFormat])
		base.Params = KeywordParams{"format": f}
		base.Message = i18n.T(i18n.CodeFormatMismatch, map[string]string{"format": f})
	}
	return []ErrorObject{base}
}

func typeNames(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		names := make([]string, 0, len(t))
		for _, it := range t {
			names = append(names, fmt.Sprint(it))
		}
		return strings.Join(names, ",")
	default:
		return fmt.Sprint(v)
	}
}

// missingProperties reports one error per required property absent from
// the instance object.
func missingProperties(base ErrorObject, node Node, value any) []ErrorObject {
	obj, ok := value.(map[string]any)
	list, _ := node[KeywordRequired].([]any)
	if !ok || len(list) == 0 {
		return []ErrorObject{base}
	}
	var out []ErrorObject
	for _, it := range list {
		name, ok := it.(string)
		if !ok {
			continue
		}
		if _, present := obj[name]; present {
			continue
		}
		e := base
		e.Params = KeywordParams{"missingProperty": name}
		e.Message = i18n.T(i18n.CodeRequiredProperty, map[string]string{"property": name})
		out = append(out, e)
	}
	if len(out) == 0 {
		return []ErrorObject{base}
	}
	return out
}

// extraneousProperties reports one error per instance key matched by
// neither properties nor patternProperties, in key order.
func extraneousProperties(base ErrorObject, node Node, value any) []ErrorObject {
	obj, ok := value.(map[string]any)
	if !ok {
		return []ErrorObject{base}
	}
	props, _ := node.Child("properties")
	var patterns []*regexp.Regexp
	if pp, ok := node.Child("patternProperties"); ok {
		for _, src := range sortedKeys(pp) {
			if re, err := regexp.Compile(src); err == nil {
				patterns = append(patterns, re)
			}
		}
	}
	var out []ErrorObject
	for _, key := range sortedKeys(obj) {
		if props.Has(key) || matchesAny(patterns, key) {
			continue
		}
		e := base
		e.Params = KeywordParams{"additionalProperty": key}
		e.Message = i18n.T(i18n.CodeAdditionalProperty, nil)
		out = append(out, e)
	}
	if len(out) == 0 {
		return []ErrorObject{base}
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
