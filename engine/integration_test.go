package engine

import (
	"context"
	"encoding/json"
	"testing"

	sv "github.com/uchkunrakhimow/smart-schema-validator"
	"github.com/uchkunrakhimow/smart-schema-validator/loader"
	"github.com/uchkunrakhimow/smart-schema-validator/worker"
)

// Integration tests that exercise the full flow: YAML schema definition,
// JSON documents, batch validation, and decoded output.

const userSchemaYAML = `
username:
  type: string
  required: true
  rules:
    - minLen: 3
    - maxLen: 20
email:
  type: string
  required: true
  rules:
    - email
  transform: lower
age:
  type: number
  default: 18
  rules:
    - min: 0
    - integer
profile:
  type: object
  fields:
    firstName:
      type: string
      required: true
    lastName:
      type: string
tags:
  type: array
  rules:
    - unique
  items:
    type: string
    rules:
      - minLen: 2
`

func TestIntegration_YAMLSchemaFlow(t *testing.T) {
	schema, err := loader.Load([]byte(userSchemaYAML))
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}

	v := New(schema)

	t.Run("valid document", func(t *testing.T) {
		result := v.ValidateJSON([]byte(`{
			"username": "johndoe",
			"email": "John@Example.ORG",
			"profile": {"firstName": "John"},
			"tags": ["go", "validation"]
		}`))

		if !result.Valid {
			t.Fatalf("Expected no errors, got %d: %v", result.ErrorCount(), result.Errors)
		}
		if result.Data["email"] != "john@example.org" {
			t.Errorf(`Data["email"] = %v; want lowered address`, result.Data["email"])
		}
		if result.Data["age"] != 18 {
			t.Errorf(`Data["age"] = %v; want default 18`, result.Data["age"])
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		result := v.ValidateJSON([]byte(`{
			"username": "jd",
			"email": "not-an-email",
			"profile": {},
			"tags": ["go", "go"]
		}`))

		if result.Valid {
			t.Fatal("Expected validation failure")
		}

		want := map[string]bool{
			"username":          false,
			"email":             false,
			"profile.firstName": false,
			"tags":              false,
		}
		for _, e := range result.Errors {
			if _, known := want[e.Field]; !known {
				t.Errorf("Unexpected error field %q: %s", e.Field, e.Message)
				continue
			}
			want[e.Field] = true
		}
		for field, seen := range want {
			if !seen {
				t.Errorf("Missing expected error for field %q", field)
			}
		}
	})
}

func TestIntegration_BatchValidation(t *testing.T) {
	schema, err := loader.Load([]byte(userSchemaYAML))
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}

	v := New(schema)

	documents := make([][]byte, 20)
	for i := range documents {
		doc := map[string]any{
			"username": "user-name",
			"email":    "user@example.org",
		}
		if i%4 == 0 {
			delete(doc, "email")
		}
		data, _ := json.Marshal(doc)
		documents[i] = data
	}

	batch := worker.ValidateBatch(context.Background(), v, documents)

	if batch.TotalJobs != 20 {
		t.Errorf("TotalJobs = %d; want 20", batch.TotalJobs)
	}
	if batch.CompletedJobs != 20 {
		t.Errorf("CompletedJobs = %d; want 20", batch.CompletedJobs)
	}
	if batch.InvalidJobs != 5 {
		t.Errorf("InvalidJobs = %d; want 5", batch.InvalidJobs)
	}

	// Results line up with their documents.
	for i, jr := range batch.Results {
		wantValid := i%4 != 0
		if jr.Result.Valid != wantValid {
			t.Errorf("Results[%d].Valid = %v; want %v", i, jr.Result.Valid, wantValid)
		}
	}
}

func TestIntegration_DecodeFlow(t *testing.T) {
	schema := sv.New().
		Field("username", sv.String().Required()).
		Field("age", sv.Number().Default(18)).
		Field("active", sv.Boolean().Default(true))

	result := New(schema).Validate(map[string]any{"username": "john"})
	if !result.Valid {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	var user struct {
		Username string `schema:"username"`
		Age      int    `schema:"age"`
		Active   bool   `schema:"active"`
	}
	if err := result.Decode(&user); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if user.Username != "john" {
		t.Errorf("Username = %q; want %q", user.Username, "john")
	}
	if user.Age != 18 {
		t.Errorf("Age = %d; want 18", user.Age)
	}
	if !user.Active {
		t.Error("Active should default to true")
	}
}
