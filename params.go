package liskvalidator

import "sort"

// Params carries the structured parameters of an ErrorObject. The concrete
// types are DataTypeParams, FieldNumberParams and, for keywords owned by the
// host engine, KeywordParams.
type Params interface {
	Get(key string) (any, bool)
	Map() map[string]any
	isParams()
}

// DataTypeParams describes a dataType failure. MinLength and MaxLength are
// mutually exclusive and only set for bytes length violations.
type DataTypeParams struct {
	DataType  string
	MinLength *int
	MaxLength *int
	Length    *int
}

func (p DataTypeParams) isParams() {}

func (p DataTypeParams) Get(key string) (any, bool) {
	switch key {
	case "dataType":
		return p.DataType, true
	case "minLength":
		if p.MinLength != nil {
			return *p.MinLength, true
		}
	case "maxLength":
		if p.MaxLength != nil {
			return *p.MaxLength, true
		}
	case "length":
		if p.Length != nil {
			return *p.Length, true
		}
	}
	return nil, false
}

func (p DataTypeParams) Map() map[string]any {
	m := map[string]any{"dataType": p.DataType}
	for _, k := range []string{"minLength", "maxLength", "length"} {
		if v, ok := p.Get(k); ok {
			m[k] = v
		}
	}
	return m
}

// FieldNumberParams lists every field number observed on one level, in
// property-name order and without deduplication.
type FieldNumberParams struct {
	FieldNumbers []int
}

func (p FieldNumberParams) isParams() {}

func (p FieldNumberParams) Get(key string) (any, bool) {
	if key == "fieldNumbers" {
		return append([]int(nil), p.FieldNumbers...), true
	}
	return nil, false
}

func (p FieldNumberParams) Map() map[string]any {
	v, _ := p.Get("fieldNumbers")
	return map[string]any{"fieldNumbers": v}
}

// KeywordParams is the open-ended fallback used for host engine keywords.
type KeywordParams map[string]any

func (p KeywordParams) isParams() {}

func (p KeywordParams) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

func (p KeywordParams) Map() map[string]any {
	m := make(map[string]any, len(p))
	for k, v := range p {
		m[k] = v
	}
	return m
}

// Keys returns the parameter names in sorted order.
func (p KeywordParams) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func intPtr(v int) *int { return &v }
