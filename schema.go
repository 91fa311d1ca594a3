package schemavalidator

import "github.com/uchkunrakhimow/smart-schema-validator/rule"

// FieldType is the closed set of value categories a field can declare.
type FieldType string

// Supported field types.
const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
	TypeAny     FieldType = "any"
)

// String returns the type name as it appears in error messages.
func (t FieldType) String() string {
	return string(t)
}

// IsValid returns true if this is a supported field type.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeObject, TypeArray, TypeAny:
		return true
	default:
		return false
	}
}

// FieldSpec describes the expectations for a single field: its type,
// required/nullable semantics, constraint rules, an optional transform,
// an optional default, and the nested shape for object and array fields.
//
// FieldNested is only consulted when Type is TypeObject and ItemSpec only
// when Type is TypeArray; a field with neither is opaque and never recursed
// into. Specs are built once and treated as read-only by any number of
// validations.
type FieldSpec struct {
	Type       FieldType
	IsRequired bool
	IsNullable bool
	RuleChain  []rule.Rule

	// TransformFunc maps the validated raw value to its output
	// representation. It must be pure.
	TransformFunc func(any) any

	// DefaultValue is used verbatim when the field is absent from the
	// assembled output. DefaultFn takes precedence and is invoked per
	// validation, supporting non-shared mutable defaults.
	DefaultValue any
	DefaultFn    func() any
	HasDefault   bool

	// FieldNested is the nested schema for object fields.
	FieldNested *Schema

	// ItemSpec is the per-element spec for array fields.
	ItemSpec *FieldSpec
}

// String creates a string field spec.
func String() *FieldSpec { return &FieldSpec{Type: TypeString} }

// Number creates a number field spec.
func Number() *FieldSpec { return &FieldSpec{Type: TypeNumber} }

// Boolean creates a boolean field spec.
func Boolean() *FieldSpec { return &FieldSpec{Type: TypeBoolean} }

// Object creates an object field spec. Declare its shape with Fields.
func Object() *FieldSpec { return &FieldSpec{Type: TypeObject} }

// Array creates an array field spec. Declare its element shape with Items.
func Array() *FieldSpec { return &FieldSpec{Type: TypeArray} }

// Any creates a field spec that accepts any value category.
func Any() *FieldSpec { return &FieldSpec{Type: TypeAny} }

// Required marks the field as required.
func (f *FieldSpec) Required() *FieldSpec {
	f.IsRequired = true
	return f
}

// Nullable allows an explicit null for the field.
func (f *FieldSpec) Nullable() *FieldSpec {
	f.IsNullable = true
	return f
}

// Rules appends constraint rules, evaluated in declaration order.
func (f *FieldSpec) Rules(rules ...rule.Rule) *FieldSpec {
	f.RuleChain = append(f.RuleChain, rules...)
	return f
}

// Transform sets the output transform for the field.
func (f *FieldSpec) Transform(fn func(any) any) *FieldSpec {
	f.TransformFunc = fn
	return f
}

// Default sets a literal default value.
func (f *FieldSpec) Default(v any) *FieldSpec {
	f.DefaultValue = v
	f.HasDefault = true
	return f
}

// DefaultFunc sets a default produced per validation call.
func (f *FieldSpec) DefaultFunc(fn func() any) *FieldSpec {
	f.DefaultFn = fn
	f.HasDefault = true
	return f
}

// Fields sets the nested schema for an object field.
func (f *FieldSpec) Fields(s *Schema) *FieldSpec {
	f.FieldNested = s
	return f
}

// Items sets the element spec for an array field.
func (f *FieldSpec) Items(item *FieldSpec) *FieldSpec {
	f.ItemSpec = item
	return f
}

// Schema is an insertion-ordered mapping from field name to FieldSpec.
// Field order is preserved so that error ordering is deterministic.
type Schema struct {
	names []string
	specs map[string]*FieldSpec
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{specs: make(map[string]*FieldSpec)}
}

// Field adds a field to the schema, preserving insertion order.
// Re-declaring an existing field replaces its spec in place.
func (s *Schema) Field(name string, spec *FieldSpec) *Schema {
	if _, exists := s.specs[name]; !exists {
		s.names = append(s.names, name)
	}
	s.specs[name] = spec
	return s
}

// Get returns the spec for a field name.
func (s *Schema) Get(name string) (*FieldSpec, bool) {
	spec, ok := s.specs[name]
	return spec, ok
}

// Names returns the field names in insertion order.
// The returned slice is owned by the schema and must not be mutated.
func (s *Schema) Names() []string {
	return s.names
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.names)
}
