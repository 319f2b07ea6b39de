package liskvalidator

import (
	"fmt"

	"github.com/reoring/liskvalidator/i18n"
)

// DataType names a codec primitive.
type DataType string

const (
	DataTypeBytes   DataType = "bytes"
	DataTypeUint32  DataType = "uint32"
	DataTypeSint32  DataType = "sint32"
	DataTypeUint64  DataType = "uint64"
	DataTypeSint64  DataType = "sint64"
	DataTypeString  DataType = "string"
	DataTypeBoolean DataType = "boolean"
)

// DataTypes lists the primitives in metaschema order.
var DataTypes = []DataType{
	DataTypeBytes, DataTypeUint32, DataTypeSint32, DataTypeUint64,
	DataTypeSint64, DataTypeString, DataTypeBoolean,
}

// Valid reports whether d is one of the known primitives.
func (d DataType) Valid() bool {
	for _, k := range DataTypes {
		if d == k {
			return true
		}
	}
	return false
}

// Check reports whether v has the shape of the primitive. Length bounds of
// bytes are not considered. Unknown data types accept everything.
func (d DataType) Check(v any) bool {
	switch d {
	case DataTypeBoolean:
		_, ok := v.(bool)
		return ok
	case DataTypeString:
		_, ok := v.(string)
		return ok
	case DataTypeBytes:
		_, ok := v.([]byte)
		return ok
	case DataTypeUint32:
		return isUint32(v)
	case DataTypeSint32:
		return isSint32(v)
	case DataTypeUint64:
		return isUint64(v)
	case DataTypeSint64:
		return isSint64(v)
	default:
		return true
	}
}

// CompileDataType compiles a dataType declaration. Declaring "type" on the
// same node is a schema defect and fails compilation.
func CompileDataType(value any, parent Node, ctx CompileContext) (ValidateFunc, error) {
	log := logger().WithField("component", "codec:keyword:dataType")
	log.Debugf("compile: value: %v", value)
	log.Debugf("compile: parent schema: %v", parent)

	if parent.Has("type") {
		return nil, compileError(KeywordDataType, schemaPathOf(ctx),
			i18n.T(i18n.CodeTypeOrDataType, nil),
			DataTypeParams{DataType: fmt.Sprint(value)})
	}
	return newDataTypeValidator(value, parent), nil
}

// newDataTypeValidator builds the runtime closure without the compile-time
// precondition. minLength and maxLength are read once, here.
func newDataTypeValidator(value any, parent Node) ValidateFunc {
	name, _ := value.(string)
	dt := DataType(name)
	minLength, hasMin := parent.Int("minLength")
	maxLength, hasMax := parent.Int("maxLength")

	mismatch := func() (bool, []ErrorObject) {
		return false, []ErrorObject{{
			Keyword: KeywordDataType,
			Message: i18n.T(i18n.CodeDataTypeMismatch, map[string]string{"dataType": name}),
			Params:  DataTypeParams{DataType: name},
		}}
	}

	return func(data any) (bool, []ErrorObject) {
		if !dt.Check(data) {
			return mismatch()
		}
		if dt != DataTypeBytes {
			return true, nil
		}
		length := len(data.([]byte))
		if hasMin && length < minLength {
			return false, []ErrorObject{{
				Keyword: KeywordDataType,
				Message: i18n.T(i18n.CodeMinLengthNotMet, nil),
				Params:  DataTypeParams{DataType: name, MinLength: intPtr(minLength), Length: intPtr(length)},
			}}
		}
		if hasMax && length > maxLength {
			return false, []ErrorObject{{
				Keyword: KeywordDataType,
				Message: i18n.T(i18n.CodeMaxLengthExceeded, nil),
				Params:  DataTypeParams{DataType: name, MaxLength: intPtr(maxLength), Length: intPtr(length)},
			}}
		}
		return true, nil
	}
}
