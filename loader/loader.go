package loader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sv "github.com/uchkunrakhimow/smart-schema-validator"
	"github.com/uchkunrakhimow/smart-schema-validator/rule"
)

// Load parses a schema document (YAML or JSON) into a Schema.
// Field order in the document is preserved.
func Load(data []byte) (*sv.Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("schema document is empty")
	}
	return parseSchema(root.Content[0])
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (*sv.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	schema, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

// fieldDoc is the on-disk shape of a field spec. Rules, fields, and items
// keep their raw nodes so order and mixed scalar/mapping forms survive.
type fieldDoc struct {
	Type      string      `yaml:"type"`
	Required  bool        `yaml:"required"`
	Nullable  bool        `yaml:"nullable"`
	Rules     []yaml.Node `yaml:"rules"`
	Transform string      `yaml:"transform"`
	Default   yaml.Node   `yaml:"default"`
	Fields    yaml.Node   `yaml:"fields"`
	Items     yaml.Node   `yaml:"items"`
}

func parseSchema(node *yaml.Node) (*sv.Schema, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: schema must be a mapping of field names to specs", node.Line)
	}

	schema := sv.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		spec, err := parseFieldSpec(name, node.Content[i+1])
		if err != nil {
			return nil, err
		}
		schema.Field(name, spec)
	}
	return schema, nil
}

// fieldSpecKeys is the closed set of keys a field spec recognizes.
// Anything else is an authoring mistake and rejected at load time.
var fieldSpecKeys = map[string]bool{
	"type":      true,
	"required":  true,
	"nullable":  true,
	"rules":     true,
	"transform": true,
	"default":   true,
	"fields":    true,
	"items":     true,
}

func parseFieldSpec(name string, node *yaml.Node) (*sv.FieldSpec, error) {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i].Value; !fieldSpecKeys[key] {
				return nil, fmt.Errorf("field %q: unknown key %q", name, key)
			}
		}
	}

	var doc fieldDoc
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}

	fieldType := sv.FieldType(doc.Type)
	if doc.Type == "" {
		return nil, fmt.Errorf("field %q: missing type", name)
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("field %q: unknown type %q", name, doc.Type)
	}

	spec := &sv.FieldSpec{
		Type:       fieldType,
		IsRequired: doc.Required,
		IsNullable: doc.Nullable,
	}

	for i := range doc.Rules {
		r, err := parseRule(&doc.Rules[i])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		spec.RuleChain = append(spec.RuleChain, r)
	}

	if doc.Transform != "" {
		fn, ok := lookupTransform(doc.Transform)
		if !ok {
			return nil, fmt.Errorf("field %q: unknown transform %q", name, doc.Transform)
		}
		spec.TransformFunc = fn
	}

	if !doc.Default.IsZero() {
		var value any
		if err := doc.Default.Decode(&value); err != nil {
			return nil, fmt.Errorf("field %q: default: %w", name, err)
		}
		spec.DefaultValue = value
		spec.HasDefault = true
	}

	if !doc.Fields.IsZero() {
		if fieldType != sv.TypeObject {
			return nil, fmt.Errorf("field %q: fields is only valid for object fields", name)
		}
		nested, err := parseSchema(&doc.Fields)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		spec.FieldNested = nested
	}

	if !doc.Items.IsZero() {
		if fieldType != sv.TypeArray {
			return nil, fmt.Errorf("field %q: items is only valid for array fields", name)
		}
		item, err := parseFieldSpec(name+" items", &doc.Items)
		if err != nil {
			return nil, err
		}
		spec.ItemSpec = item
	}

	return spec, nil
}

// parseRule builds a rule from either a bare name ("email") or a single-key
// mapping carrying the argument ("minLen: 3", "oneOf: [a, b]").
func parseRule(node *yaml.Node) (rule.Rule, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return buildRule(node.Value, nil)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return rule.Rule{}, fmt.Errorf("line %d: a rule mapping must have exactly one key", node.Line)
		}
		return buildRule(node.Content[0].Value, node.Content[1])
	default:
		return rule.Rule{}, fmt.Errorf("line %d: a rule must be a name or a single-key mapping", node.Line)
	}
}

func buildRule(name string, arg *yaml.Node) (rule.Rule, error) {
	switch name {
	case "email":
		return rule.Email(), nil
	case "url":
		return rule.URL(), nil
	case "uuid":
		return rule.UUID(), nil
	case "notBlank":
		return rule.NotBlank(), nil
	case "unique":
		return rule.Unique(), nil
	case "positive":
		return rule.Positive(), nil
	case "negative":
		return rule.Negative(), nil
	case "integer":
		return rule.Integer(), nil
	case "minLen":
		n, err := intArg(name, arg)
		return rule.MinLen(n), err
	case "maxLen":
		n, err := intArg(name, arg)
		return rule.MaxLen(n), err
	case "pattern":
		s, err := stringArg(name, arg)
		if err != nil {
			return rule.Rule{}, err
		}
		return rule.Matches(s), nil
	case "min":
		n, err := floatArg(name, arg)
		return rule.Min(n), err
	case "max":
		n, err := floatArg(name, arg)
		return rule.Max(n), err
	case "minItems":
		n, err := intArg(name, arg)
		return rule.MinItems(n), err
	case "maxItems":
		n, err := intArg(name, arg)
		return rule.MaxItems(n), err
	case "hasKeys":
		keys, err := stringListArg(name, arg)
		return rule.HasKeys(keys...), err
	case "oneOf":
		return oneOfRule(arg)
	default:
		return rule.Rule{}, fmt.Errorf("unknown rule %q", name)
	}
}

// oneOfRule accepts either a list of strings or a list of numbers.
func oneOfRule(arg *yaml.Node) (rule.Rule, error) {
	if arg == nil {
		return rule.Rule{}, errors.New("rule \"oneOf\" requires a list argument")
	}
	var numbers []float64
	if err := arg.Decode(&numbers); err == nil {
		return rule.OneOfNumber(numbers...), nil
	}
	var options []string
	if err := arg.Decode(&options); err != nil {
		return rule.Rule{}, fmt.Errorf("rule \"oneOf\": %w", err)
	}
	return rule.OneOf(options...), nil
}

func intArg(name string, arg *yaml.Node) (int, error) {
	if arg == nil {
		return 0, fmt.Errorf("rule %q requires an integer argument", name)
	}
	var n int
	if err := arg.Decode(&n); err != nil {
		return 0, fmt.Errorf("rule %q: %w", name, err)
	}
	return n, nil
}

func floatArg(name string, arg *yaml.Node) (float64, error) {
	if arg == nil {
		return 0, fmt.Errorf("rule %q requires a numeric argument", name)
	}
	var n float64
	if err := arg.Decode(&n); err != nil {
		return 0, fmt.Errorf("rule %q: %w", name, err)
	}
	return n, nil
}

func stringArg(name string, arg *yaml.Node) (string, error) {
	if arg == nil {
		return "", fmt.Errorf("rule %q requires a string argument", name)
	}
	var s string
	if err := arg.Decode(&s); err != nil {
		return "", fmt.Errorf("rule %q: %w", name, err)
	}
	return s, nil
}

func stringListArg(name string, arg *yaml.Node) ([]string, error) {
	if arg == nil {
		return nil, fmt.Errorf("rule %q requires a list argument", name)
	}
	var list []string
	if err := arg.Decode(&list); err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return list, nil
}
