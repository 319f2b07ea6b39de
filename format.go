package liskvalidator

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/reoring/liskvalidator/i18n"
)

type keywordFormatter func(e ErrorObject) string

var keywordFormatters = map[string]keywordFormatter{
	KeywordType: func(e ErrorObject) string {
		return fmt.Sprintf("Property '%s' should be of type '%s'", e.InstancePath, ParamToString(e.Param("type")))
	},
	KeywordAdditionalProperties: func(e ErrorObject) string {
		return fmt.Sprintf("Property '%s' has extraneous property '%s'", e.InstancePath, ParamToString(e.Param("additionalProperty")))
	},
	KeywordMinLength: propertyMessage,
	KeywordMaxLength: propertyMessage,
	KeywordFormat:    propertyMessage,
	KeywordDataType:  propertyMessage,
	KeywordRequired: func(e ErrorObject) string {
		return "Missing property, " + e.Message
	},
}

func propertyMessage(e ErrorObject) string {
	return fmt.Sprintf("Property '%s' %s", e.InstancePath, e.Message)
}

// FormatError renders one error as a human readable line.
func FormatError(e ErrorObject) string {
	if f, ok := keywordFormatters[e.Keyword]; ok {
		return f(e)
	}
	if e.Message != "" {
		return e.Message
	}
	return i18n.T(i18n.CodeUnspecified, nil)
}

// ParamToString converts an error parameter to text: big integers as decimal
// digits, byte slices as lowercase hex, nil as the empty string.
func ParamToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *big.Int:
		if t == nil {
			return ""
		}
		return t.String()
	case big.Int:
		return t.String()
	case []byte:
		return hex.EncodeToString(t)
	default:
		return fmt.Sprint(t)
	}
}
