package toolinput

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type kind int

const (
	kindString kind = iota
	kindNumber
	kindCount
	kindObject
	kindArray
)

func (k kind) String() string {
	switch k {
	case kindNumber:
		return "a number"
	case kindCount:
		return "a non-negative integer"
	case kindObject:
		return "an object"
	case kindArray:
		return "an array"
	default:
		return "a string"
	}
}

// ValidationError reports the first field that failed a Rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_ERROR"
}

// Rule checks one top-level field of a parsed argument map.
type Rule struct {
	Field    string
	kind     kind
	required bool
}

func RequiredString(field string) Rule { return Rule{Field: field, kind: kindString, required: true} }
func OptionalString(field string) Rule { return Rule{Field: field, kind: kindString} }
func RequiredNumber(field string) Rule { return Rule{Field: field, kind: kindNumber, required: true} }
func OptionalNumber(field string) Rule { return Rule{Field: field, kind: kindNumber} }
func OptionalCount(field string) Rule  { return Rule{Field: field, kind: kindCount} }
func RequiredObject(field string) Rule { return Rule{Field: field, kind: kindObject, required: true} }
func OptionalArray(field string) Rule  { return Rule{Field: field, kind: kindArray} }

// Rules are evaluated in order; the first failure wins.
type Rules []Rule

// Check returns a *ValidationError for the first missing required field or
// present field of the wrong type. A null value counts as missing. An empty
// string does not satisfy a required string rule.
func (rules Rules) Check(args map[string]any) error {
	for _, rule := range rules {
		value, present := args[rule.Field]
		if !present || value == nil {
			if rule.required {
				return rule.fail("is required")
			}
			continue
		}

		if !rule.kind.matches(value) {
			return rule.fail(fmt.Sprintf("must be %s", rule.kind))
		}
		if rule.required && rule.kind == kindString && strings.TrimSpace(value.(string)) == "" {
			return rule.fail("is required")
		}
	}
	return nil
}

// CheckUnknown returns a *ValidationError naming the first key, in sorted
// order, that no rule covers.
func (rules Rules) CheckUnknown(args map[string]any) error {
	known := make(map[string]bool, len(rules))
	for _, rule := range rules {
		known[rule.Field] = true
	}
	keys := make([]string, 0, len(args))
	for key := range args {
		if !known[key] {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return &ValidationError{Field: keys[0], Message: "unknown field " + keys[0]}
}

func (rule Rule) fail(reason string) error {
	return &ValidationError{Field: rule.Field, Message: rule.Field + " " + reason}
}

func (k kind) matches(value any) bool {
	switch k {
	case kindNumber:
		switch value.(type) {
		case float64, float32, int, int64, int32, uint, uint64, uint32:
			return true
		}
		return false
	case kindCount:
		number, ok := value.(float64)
		return ok && number >= 0 && number == math.Trunc(number)
	case kindObject:
		_, ok := value.(map[string]any)
		return ok
	case kindArray:
		_, ok := value.([]any)
		return ok
	default:
		_, ok := value.(string)
		return ok
	}
}
