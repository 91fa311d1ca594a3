// Package engine provides the recursive schema validation engine.
package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	sv "github.com/uchkunrakhimow/smart-schema-validator"
	"github.com/uchkunrakhimow/smart-schema-validator/pool"
)

// Validator validates object-like values against a schema.
//
// A Validator is cheap to construct and stateless apart from its
// configuration; nested objects and arrays of objects are validated by
// fresh engines scoped to the sub-schema with the same configuration.
// Schemas and rules are read-only, so a single Validator may be used from
// any number of goroutines.
type Validator struct {
	schema  *sv.Schema
	options *sv.Options
	metrics *sv.Metrics
}

// New creates a Validator for the given schema.
func New(schema *sv.Schema, opts ...sv.Option) *Validator {
	options := sv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Validator{
		schema:  schema,
		options: options,
		metrics: sv.NewMetrics(),
	}
}

// scoped returns a fresh engine over a nested schema with configuration
// propagated unchanged. Scoped engines do not record metrics; only the
// top-level call counts as one validation.
func (v *Validator) scoped(schema *sv.Schema) *Validator {
	return &Validator{schema: schema, options: v.options}
}

// Schema returns the schema this validator is configured with.
func (v *Validator) Schema() *sv.Schema {
	return v.schema
}

// Options returns the validator's options.
func (v *Validator) Options() *sv.Options {
	return v.options
}

// Metrics returns the validator's metrics.
func (v *Validator) Metrics() *sv.Metrics {
	return v.metrics
}

// Validate validates data against the schema and returns the result.
//
// The data is expected to be an object-like mapping from field name to
// value; anything else is handled best-effort, with every declared field
// treated as absent. Validation itself never fails: all violations are
// reported as data on the result.
func (v *Validator) Validate(data any) *sv.Result {
	start := time.Now()
	result := v.validate(data)
	if v.metrics != nil {
		v.metrics.RecordValidation(time.Since(start), result.Valid)
		for _, e := range result.Errors {
			v.metrics.RecordError(e.Code)
		}
	}
	return result
}

// ValidateJSON unmarshals raw JSON and validates it.
// Malformed JSON is reported as a single validation error.
func (v *Validator) ValidateJSON(data []byte) *sv.Result {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		result := sv.NewResult()
		result.AddError(sv.ValidationError{
			Message: fmt.Sprintf("Invalid JSON: %v", err),
			Code:    sv.CodeType,
		})
		if v.metrics != nil {
			v.metrics.RecordValidation(0, false)
			v.metrics.RecordError(sv.CodeType)
		}
		return result
	}
	return v.Validate(parsed)
}

// validate runs the three validation passes: required fields, per-field
// validation with output assembly, then default substitution.
func (v *Validator) validate(data any) *sv.Result {
	result := sv.NewResult()
	dataMap, _ := asMap(data)
	firstMode := v.options.ErrorMode == sv.CollectFirst

	// Pass 1: required fields, in schema order. A field is missing when its
	// key is absent, or when it is explicitly null and not nullable.
	for _, name := range v.schema.Names() {
		spec, _ := v.schema.Get(name)
		if !spec.IsRequired {
			continue
		}
		value, present := dataMap[name]
		if !present || (value == nil && !spec.IsNullable) {
			result.AddError(sv.RequiredError(name))
			if firstMode {
				return result
			}
		}
	}

	// Pass 2: per-field validation and output assembly. Go maps carry no
	// insertion order, so declared fields run in schema order and unknown
	// keys afterwards in lexicographic order, keeping error order
	// deterministic.
	out := make(map[string]any, len(dataMap))
	assigned := make(map[string]bool, len(dataMap))

	for _, name := range v.schema.Names() {
		value, present := dataMap[name]
		if !present {
			continue
		}
		spec, _ := v.schema.Get(name)

		errs := v.validateField(name, value, spec)
		if len(errs) > 0 {
			result.AddErrors(errs)
			if firstMode {
				return result
			}
			continue
		}

		if value == nil {
			// Nullable null: valid but carries no content. Mark it assigned
			// so the default pass does not fire, and omit it from the output.
			assigned[name] = true
			continue
		}

		outValue := value
		if v.options.Transforms && spec.TransformFunc != nil {
			outValue = spec.TransformFunc(value)
		}
		if outValue == nil {
			// A transform that deliberately produces absence leaves the key
			// unassigned, so a declared default still applies afterwards.
			continue
		}
		out[name] = outValue
		assigned[name] = true
	}

	for _, name := range unknownKeys(dataMap, v.schema) {
		if v.options.Strict {
			result.AddError(sv.UnknownFieldError(name, dataMap[name]))
			if firstMode {
				return result
			}
			continue
		}
		out[name] = dataMap[name]
	}

	// Pass 3: default substitution, keyed on the assembled output rather
	// than the original input, in schema order.
	for _, name := range v.schema.Names() {
		if assigned[name] {
			continue
		}
		if _, present := out[name]; present {
			continue
		}
		spec, _ := v.schema.Get(name)
		if !spec.HasDefault {
			continue
		}
		if spec.DefaultFn != nil {
			out[name] = spec.DefaultFn()
		} else {
			out[name] = spec.DefaultValue
		}
	}

	if result.Valid {
		result.Data = out
	}
	return result
}

// validateField validates a single present value against its spec and
// returns the errors in traversal order. It is invoked recursively for
// array elements.
func (v *Validator) validateField(name string, value any, spec *sv.FieldSpec) []sv.ValidationError {
	if value == nil {
		if spec.IsNullable {
			return nil
		}
		return []sv.ValidationError{sv.NullError(name)}
	}

	if !typeMatches(spec.Type, value) {
		return []sv.ValidationError{sv.TypeError(name, spec.Type, value)}
	}

	firstMode := v.options.ErrorMode == sv.CollectFirst
	var errs []sv.ValidationError

	// Nested object recursion: a fresh engine scoped to the nested schema,
	// re-emitting its errors with the field path prefixed. The nested
	// engine's transforms and defaults are discarded; the outer
	// output-assembly applies the outer transform instead.
	if spec.Type == sv.TypeObject && spec.FieldNested != nil {
		if m, ok := asMap(value); ok {
			nested := v.scoped(spec.FieldNested).validate(m)
			for _, e := range nested.Errors {
				errs = append(errs, e.Prefixed(name))
			}
			if firstMode && len(errs) > 0 {
				return errs
			}
		}
	}

	// Nested array recursion: elements of object shape validate as
	// standalone records; anything else validates as a field named
	// "<name>[<i>]" against the item spec, which permits arrays of
	// primitives, per-item rule chains, and arrays of arrays.
	if spec.Type == sv.TypeArray && spec.ItemSpec != nil {
		if elems, ok := asSlice(value); ok {
			item := spec.ItemSpec
			for i, elem := range elems {
				elemPath := pool.IndexedPath(name, i)
				if item.Type == sv.TypeObject && item.FieldNested != nil {
					if m, ok := asMap(elem); ok {
						nested := v.scoped(item.FieldNested).validate(m)
						for _, e := range nested.Errors {
							errs = append(errs, e.Prefixed(elemPath))
						}
					} else {
						errs = append(errs, v.validateField(elemPath, elem, item)...)
					}
				} else {
					errs = append(errs, v.validateField(elemPath, elem, item)...)
				}
				if firstMode && len(errs) > 0 {
					return errs
				}
			}
		}
	}

	// Rule chain, in declared order.
	for _, r := range spec.RuleChain {
		if r.Check == nil || r.Check(value) {
			continue
		}
		var msg string
		if r.Message != nil {
			msg = r.Message(value, name)
		}
		errs = append(errs, sv.RuleError(name, msg, value))
		if firstMode {
			break
		}
	}

	return errs
}

// unknownKeys returns the data keys not declared in the schema, sorted.
func unknownKeys(dataMap map[string]any, schema *sv.Schema) []string {
	var unknown []string
	for k := range dataMap {
		if _, declared := schema.Get(k); !declared {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// typeMatches reports whether the value's runtime category matches the
// declared field type.
func typeMatches(t sv.FieldType, value any) bool {
	switch t {
	case sv.TypeAny:
		return true
	case sv.TypeString:
		_, ok := value.(string)
		return ok
	case sv.TypeBoolean:
		_, ok := value.(bool)
		return ok
	case sv.TypeNumber:
		f, ok := toFloat64(value)
		return ok && !math.IsNaN(f)
	case sv.TypeObject:
		_, ok := asMap(value)
		return ok
	case sv.TypeArray:
		_, ok := asSlice(value)
		return ok
	default:
		return false
	}
}

// asMap normalizes an object-like value to map[string]any.
// Nil and non-map values are rejected.
func asMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asSlice normalizes a list-like value to []any.
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

// toFloat64 coerces any numeric kind, including json.Number, to float64.
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
