package rule

import (
	"encoding/json"
	"fmt"
	"math"
)

// MessageFunc produces an error message for a failed rule, given the
// offending value and the field name (the full path for nested fields).
type MessageFunc func(value any, field string) string

// Rule is a single declarative constraint: a pure predicate plus a message
// producer. Rules are immutable and stateless; a constructor may close over
// its configuration (e.g. MinLen(3) capturing 3) but never mutates anything.
type Rule struct {
	// Check reports whether the value satisfies the constraint.
	Check func(value any) bool

	// Message produces the error message when Check returns false.
	Message MessageFunc
}

// Msg wraps a literal message string as a MessageFunc.
func Msg(text string) MessageFunc {
	return func(any, string) string { return text }
}

// Custom builds a rule from an arbitrary predicate and a literal message.
func Custom(check func(value any) bool, message string) Rule {
	return Rule{Check: check, Message: Msg(message)}
}

// CustomFunc builds a rule from an arbitrary predicate and a message function.
func CustomFunc(check func(value any) bool, message MessageFunc) Rule {
	return Rule{Check: check, Message: message}
}

// fieldMessage builds the common "<field> <suffix>" message shape.
func fieldMessage(suffix string) MessageFunc {
	return func(_ any, field string) string {
		return field + " " + suffix
	}
}

// asString extracts a string value. Non-strings fail string rules.
func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// toFloat64 coerces any numeric kind to float64.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// isWholeNumber reports whether value is a numeric value with no fractional part.
func isWholeNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	f, ok := toFloat64(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) == f
}

// elementKey derives a comparable key for uniqueness checks. Values that are
// not comparable with == (maps, slices) are keyed by their printed form.
func elementKey(value any) string {
	return fmt.Sprintf("%T\x00%v", value, value)
}
