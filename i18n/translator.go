package i18n

import (
	"strings"
	"sync"
)

// Message codes used by the validator. The English texts are part of the
// public contract and are matched verbatim by callers.
const (
	CodeTypeOrDataType     = "type_or_data_type"
	CodeMinLengthNotMet    = "min_length_not_satisfied"
	CodeMaxLengthExceeded  = "max_length_exceeded"
	CodeDataTypeMismatch   = "data_type_mismatch"
	CodeFieldNumberUnique  = "field_number_not_unique"
	CodeFieldNumberRange   = "field_number_out_of_range"
	CodeDuplicateKey       = "duplicate_key"
	CodeRequiredProperty   = "required_property"
	CodeAdditionalProperty = "additional_property"
	CodeTooFewCharacters   = "too_few_characters"
	CodeTooManyCharacters  = "too_many_characters"
	CodeFormatMismatch     = "format_mismatch"
	CodeTypeMismatch       = "type_mismatch"
	CodeUnspecified        = "unspecified"
)

// Translator retrieves localized messages for message codes.
// data provides values to embed in the message (for example "dataType",
// "property" or "limit").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		CodeTypeOrDataType:     `Either "dataType" or "type" can be presented in schema`,
		CodeMinLengthNotMet:    "minLength not satisfied",
		CodeMaxLengthExceeded:  "maxLength exceeded",
		CodeDataTypeMismatch:   "should be of type '{dataType}'",
		CodeFieldNumberUnique:  "Value must be unique across all properties on same level",
		CodeFieldNumberRange:   "must be an integer between 1 and 18999",
		CodeDuplicateKey:       "key '{key}' duplicated",
		CodeRequiredProperty:   "must have required property '{property}'",
		CodeAdditionalProperty: "must NOT have additional properties",
		CodeTooFewCharacters:   "must NOT have fewer than {limit} characters",
		CodeTooManyCharacters:  "must NOT have more than {limit} characters",
		CodeFormatMismatch:     `must match format "{format}"`,
		CodeTypeMismatch:       "must be {type}",
		CodeUnspecified:        "Unspecified validator error",
	},
	"ja": {
		CodeTypeOrDataType:     `"dataType" と "type" はどちらか一方のみ指定できます`,
		CodeMinLengthNotMet:    "最小長を満たしていません",
		CodeMaxLengthExceeded:  "最大長を超えています",
		CodeDataTypeMismatch:   "'{dataType}' 型である必要があります",
		CodeFieldNumberUnique:  "同じ階層のプロパティ間で値が重複しています",
		CodeFieldNumberRange:   "1 から 18999 の整数である必要があります",
		CodeDuplicateKey:       "キー '{key}' が重複しています",
		CodeRequiredProperty:   "必須プロパティ '{property}' がありません",
		CodeAdditionalProperty: "追加のプロパティは許可されていません",
		CodeTooFewCharacters:   "{limit} 文字以上である必要があります",
		CodeTooManyCharacters:  "{limit} 文字以下である必要があります",
		CodeFormatMismatch:     "フォーマット \"{format}\" に一致しません",
		CodeTypeMismatch:       "{type} である必要があります",
		CodeUnspecified:        "不明な検証エラー",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {name} placeholders with values from data.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
