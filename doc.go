// Package schemavalidator provides declarative data-shape validation.
//
// A Schema describes the expected fields of an object-like value: their
// types, required/nullable semantics, constraint rules, optional transforms,
// and default values. The validation engine walks the schema against the
// data, collects every violation as structured data (never as a panic or a
// returned error), and on success produces a cleaned copy of the input with
// transforms and defaults applied.
//
// # Quick Start
//
//	import (
//	    sv "github.com/uchkunrakhimow/smart-schema-validator"
//	    "github.com/uchkunrakhimow/smart-schema-validator/engine"
//	    "github.com/uchkunrakhimow/smart-schema-validator/rule"
//	)
//
//	schema := sv.New().
//	    Field("username", sv.String().Required().Rules(rule.MinLen(3), rule.MaxLen(20))).
//	    Field("email", sv.String().Required().Rules(rule.Email())).
//	    Field("age", sv.Number().Rules(rule.Min(18)).Default(18))
//
//	v := engine.New(schema)
//	result := v.Validate(map[string]any{
//	    "username": "john",
//	    "email":    "john@example.com",
//	})
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// # Functional Options
//
//	v := engine.New(schema,
//	    sv.WithStrictMode(true),
//	    sv.WithErrorMode(sv.CollectFirst),
//	    sv.WithTransforms(false),
//	)
//
// # Architecture
//
// The engine is self-recursive: an object field with nested sub-fields, or
// an array field whose items are objects, is validated by a fresh engine
// scoped to the sub-schema with the same configuration. Schemas and rules
// are read-only after construction, so any number of validations may run
// concurrently against the same schema without coordination.
//
//   - Schema / FieldSpec — ordered, declarative field descriptions
//   - rule.Rule          — predicate plus message producer, composed per field
//   - engine.Validator   — the recursive three-pass validation engine
//   - loader             — YAML/JSON schema documents
//   - worker             — worker pool for parallel batch validation
package schemavalidator
