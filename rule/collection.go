package rule

import (
	"fmt"
	"reflect"
	"strings"
)

// MinItems requires an array with at least min elements.
func MinItems(min int) Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := sliceLen(value)
			return ok && n >= min
		},
		Message: fieldMessage(fmt.Sprintf("must have at least %d items", min)),
	}
}

// MaxItems requires an array with at most max elements.
func MaxItems(max int) Rule {
	return Rule{
		Check: func(value any) bool {
			n, ok := sliceLen(value)
			return ok && n <= max
		},
		Message: fieldMessage(fmt.Sprintf("must have at most %d items", max)),
	}
}

// Unique requires all array elements to be distinct.
func Unique() Rule {
	return uniqueRule(nil)
}

// UniqueBy requires all array elements to be distinct under the given key
// extractor, e.g. UniqueBy(func(v any) any { return v.(map[string]any)["id"] }).
func UniqueBy(key func(value any) any) Rule {
	return uniqueRule(key)
}

func uniqueRule(key func(value any) any) Rule {
	return Rule{
		Check: func(value any) bool {
			elems, ok := asSlice(value)
			if !ok {
				return false
			}
			seen := make(map[string]struct{}, len(elems))
			for _, e := range elems {
				if key != nil {
					e = key(e)
				}
				k := elementKey(e)
				if _, dup := seen[k]; dup {
					return false
				}
				seen[k] = struct{}{}
			}
			return true
		},
		Message: fieldMessage("must contain unique items"),
	}
}

// HasKeys requires an object to contain every one of the given keys.
func HasKeys(keys ...string) Rule {
	return Rule{
		Check: func(value any) bool {
			m, ok := value.(map[string]any)
			if !ok {
				return false
			}
			for _, k := range keys {
				if _, present := m[k]; !present {
					return false
				}
			}
			return true
		},
		Message: fieldMessage(fmt.Sprintf("must contain keys: %s", strings.Join(keys, ", "))),
	}
}

// asSlice normalizes any slice or array value to []any.
func asSlice(value any) ([]any, bool) {
	if s, ok := value.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// sliceLen returns the element count of a slice or array value.
func sliceLen(value any) (int, bool) {
	if s, ok := value.([]any); ok {
		return len(s), true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return 0, false
	}
	return rv.Len(), true
}
