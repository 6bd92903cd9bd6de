package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"
)

// Rule declares the constraints for a single payload field.
// Zero values switch a check off; MaxLength 0 means unbounded.
type Rule struct {
	Field      string
	Required   bool
	IsString   bool
	MinLength  int
	MaxLength  int
	IsArray    bool
	EnumValues []string
	IsBoolean  bool
	IsInteger  bool
}

// FieldError is the single message produced for a field that fails its rule.
type FieldError struct {
	Field   string
	Message string
}

// Error implements error interface
func (e *FieldError) Error() string {
	return e.Message
}

func newFieldError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Check validates value against rule and returns nil or a *FieldError.
// A nil value stands for both an absent key and JSON null.
func Check(value interface{}, rule Rule) error {
	if value == nil {
		if rule.Required {
			return newFieldError(rule.Field, "%s is required.", rule.Field)
		}
		return nil
	}

	if rule.IsString {
		s, ok := value.(string)
		if !ok {
			return newFieldError(rule.Field, "%s must be a string.", rule.Field)
		}
		if err := ValidateStringLength(s, rule.MinLength, rule.MaxLength, rule.Field); err != nil {
			return err
		}
	}

	if rule.IsArray {
		items, ok := asSlice(value)
		if !ok {
			return newFieldError(rule.Field, "%s must be an array.", rule.Field)
		}
		if len(rule.EnumValues) > 0 {
			for _, item := range items {
				if !isEnumMember(item, rule.EnumValues) {
					return newFieldError(rule.Field, "Invalid %s: %v", rule.Field, item)
				}
			}
		}
	}

	if rule.IsBoolean {
		if _, ok := value.(bool); !ok {
			return newFieldError(rule.Field, "%s must be a boolean.", rule.Field)
		}
	}

	if rule.IsInteger {
		if _, ok := AsInt(value); !ok {
			return newFieldError(rule.Field, "%s must be an integer.", rule.Field)
		}
	}

	return nil
}

// CheckAll runs every rule in order against payload and collects the
// messages of the failing ones.
func CheckAll(payload map[string]interface{}, rules []Rule) []string {
	var messages []string
	for _, rule := range rules {
		if err := Check(payload[rule.Field], rule); err != nil {
			messages = append(messages, err.Error())
		}
	}
	return messages
}

// ValidateStringLength validates string length in code points
func ValidateStringLength(s string, min, max int, fieldName string) error {
	length := utf8.RuneCountInString(s)
	if length < min {
		return newFieldError(fieldName, "%s must be at least %d characters long.", fieldName, min)
	}
	if max > 0 && length > max {
		return newFieldError(fieldName, "%s must be at most %d characters long.", fieldName, max)
	}
	return nil
}

// AsInt converts decoded JSON numbers and Go integers to int.
// Numbers with a fractional part are rejected.
func AsInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asSlice(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case []string:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]interface{}, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func isEnumMember(item interface{}, allowed []string) bool {
	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.String {
		return false
	}
	s := rv.String()
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
