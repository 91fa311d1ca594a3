// Package loader parses declarative schema documents into Schema values.
//
// Documents are YAML (or JSON, which YAML subsumes) mappings from field
// names to field specs. Field order in the document is preserved, so error
// ordering stays deterministic. A field spec recognizes the keys type,
// required, nullable, rules, transform, default, fields (nested object
// schema), and items (array element spec).
//
// Rules are referenced by name, either bare or with an argument:
//
//	username:
//	  type: string
//	  required: true
//	  transform: trim
//	  rules:
//	    - minLen: 3
//	    - maxLen: 20
//	email:
//	  type: string
//	  required: true
//	  rules: [email]
//	age:
//	  type: number
//	  default: 18
//	  rules:
//	    - min: 18
//	tags:
//	  type: array
//	  rules: [unique]
//	  items:
//	    type: string
//
// Transforms are referenced by registered name; trim, lower, and upper are
// built in, and RegisterTransform adds custom ones. Loading errors (bad
// syntax, unknown rule or transform names, invalid types) are returned as
// regular errors; they are authoring mistakes, not validation results.
package loader
