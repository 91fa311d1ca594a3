// Package rule provides the catalog of ready-made validation rules.
//
// A Rule pairs a pure predicate with a message producer. The engine has no
// dependency on this catalog: any value matching the Rule shape works,
// including rules built with Custom and CustomFunc.
//
// Each source file groups a family of rules (string.go, number.go,
// collection.go, format.go). All constructors are stateless factories; a
// constructed Rule is immutable and safe for concurrent use.
//
//	schema := sv.New().
//	    Field("email", sv.String().Required().Rules(rule.Email())).
//	    Field("age", sv.Number().Rules(rule.Min(18), rule.Integer())).
//	    Field("tags", sv.Array().Rules(rule.Unique(), rule.MaxItems(10)))
package rule
