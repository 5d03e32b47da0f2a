package toolinput

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Parse decodes a tool argument into a JSON object. Blank input yields an
// empty map. With lenient set the input goes through NormalizeRelaxed first.
func Parse(input string, lenient bool) (map[string]any, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	if lenient {
		normalized, err := NormalizeRelaxed(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
		trimmed = normalized
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if args == nil {
		return nil, fmt.Errorf("invalid input: expected a JSON object")
	}
	return args, nil
}

// Decode copies args into target, a pointer to a struct whose fields carry
// json tags. Scalars are converted weakly, so "6" decodes into an int field,
// but numeric fields only accept numbers and numeric strings: see
// numericHook. Unknown keys are ignored; see Rules.CheckUnknown.
func Decode(args map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       numericHook,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		var decodeErr *mapstructure.Error
		if errors.As(err, &decodeErr) {
			return fmt.Errorf("invalid arguments: %s", strings.Join(decodeErr.Errors, "; "))
		}
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// numericHook stops weak decoding from inventing numbers. Booleans and
// non-numeric strings are rejected, integer fields refuse fractions and
// unsigned fields refuse negatives.
func numericHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	kind := to.Kind()
	signed := kind >= reflect.Int && kind <= reflect.Int64
	unsigned := kind >= reflect.Uint && kind <= reflect.Uint64
	if !signed && !unsigned && kind != reflect.Float32 && kind != reflect.Float64 {
		return data, nil
	}

	var value float64
	switch typed := data.(type) {
	case float64:
		value = typed
	case bool:
		return nil, fmt.Errorf("expected a number, got %t", typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", typed)
		}
		value = parsed
	default:
		return data, nil
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("expected a finite number, got %v", value)
	}
	if (signed || unsigned) && value != math.Trunc(value) {
		return nil, fmt.Errorf("expected a whole number, got %v", value)
	}
	if unsigned && value < 0 {
		return nil, fmt.Errorf("expected a non-negative number, got %v", value)
	}
	return value, nil
}
