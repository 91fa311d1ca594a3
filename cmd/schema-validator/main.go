// Package main implements the schema-validator CLI tool.
// It validates JSON documents against a declarative schema document.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	sv "github.com/uchkunrakhimow/smart-schema-validator"
	"github.com/uchkunrakhimow/smart-schema-validator/engine"
	"github.com/uchkunrakhimow/smart-schema-validator/loader"
)

const usage = `schema-validator - declarative data-shape validator

Usage:
  schema-validator -schema schema.yaml [options] <file>...
  schema-validator -schema schema.yaml [options] -   (read from stdin)
  cat data.json | schema-validator -schema schema.yaml -

Examples:
  schema-validator -schema user.yaml user.json
  schema-validator -schema user.yaml -strict users/*.json
  schema-validator -schema user.yaml -output json -fail-fast user.json

Options:
`

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration.
type Config struct {
	SchemaPath   string
	Output       OutputFormat
	Strict       bool
	FailFast     bool
	NoTransforms bool
	Quiet        bool
	ShowVersion  bool
	Files        []string
}

// ValidationOutput represents the JSON output structure for one document.
type ValidationOutput struct {
	Source   string        `json:"source"`
	Valid    bool          `json:"valid"`
	Errors   int           `json:"errors"`
	Issues   []IssueOutput `json:"issues,omitempty"`
	Duration string        `json:"duration"`
}

// IssueOutput represents a single validation error in JSON output.
type IssueOutput struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("schema-validator v%s\n", sv.Version)
		os.Exit(0)
	}

	if config.SchemaPath == "" || len(config.Files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(config))
}

func parseFlags() *Config {
	config := &Config{Output: OutputText}

	var output string
	flag.StringVar(&config.SchemaPath, "schema", "", "Schema document (YAML or JSON) to validate against")
	flag.StringVar(&output, "output", "text", "Output format: text, json")
	flag.BoolVar(&config.Strict, "strict", false, "Reject data keys not declared in the schema")
	flag.BoolVar(&config.FailFast, "fail-fast", false, "Stop at the first validation error")
	flag.BoolVar(&config.NoTransforms, "no-transforms", false, "Disable field transforms")
	flag.BoolVar(&config.Quiet, "quiet", false, "Only report invalid documents")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version")
	flag.BoolVar(&config.ShowVersion, "v", false, "Show version (shorthand)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	switch strings.ToLower(output) {
	case "json":
		config.Output = OutputJSON
	default:
		config.Output = OutputText
	}

	config.Files = flag.Args()
	return config
}

func run(config *Config) int {
	schema, err := loader.LoadFile(config.SchemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	opts := []sv.Option{
		sv.WithStrictMode(config.Strict),
		sv.WithTransforms(!config.NoTransforms),
	}
	if config.FailFast {
		opts = append(opts, sv.WithFailFast())
	}

	v := engine.New(schema, opts...)

	hasInvalid := false
	outputs := make([]ValidationOutput, 0, len(config.Files))

	for _, file := range config.Files {
		if file == "-" {
			data, readErr := io.ReadAll(os.Stdin)
			if readErr != nil {
				fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", readErr)
				hasInvalid = true
				continue
			}
			output, invalid := validateData(v, data, "stdin", config)
			outputs = append(outputs, output)
			if invalid {
				hasInvalid = true
			}
			continue
		}

		matches, globErr := filepath.Glob(file)
		if globErr != nil {
			fmt.Fprintf(os.Stderr, "Error with pattern '%s': %v\n", file, globErr)
			hasInvalid = true
			continue
		}
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "No files match pattern: %s\n", file)
			hasInvalid = true
			continue
		}

		for _, match := range matches {
			output, invalid := validateFile(v, match, config)
			outputs = append(outputs, output)
			if invalid {
				hasInvalid = true
			}
		}
	}

	if config.Output == OutputJSON {
		jsonOutput, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Println(string(jsonOutput))
	}

	if hasInvalid {
		return 1
	}
	return 0
}

func validateFile(v *engine.Validator, path string, config *Config) (ValidationOutput, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if config.Output == OutputText {
			fmt.Printf("Error reading %s: %v\n", path, err)
		}
		return ValidationOutput{
			Source: path,
			Valid:  false,
			Errors: 1,
			Issues: []IssueOutput{{
				Code:    "exception",
				Message: fmt.Sprintf("Failed to read file: %v", err),
			}},
		}, true
	}

	return validateData(v, data, path, config)
}

func validateData(v *engine.Validator, data []byte, name string, config *Config) (ValidationOutput, bool) {
	start := time.Now()
	result := v.ValidateJSON(data)
	duration := time.Since(start)

	output := ValidationOutput{
		Source:   name,
		Valid:    result.Valid,
		Errors:   result.ErrorCount(),
		Duration: duration.Round(time.Microsecond).String(),
	}
	for _, e := range result.Errors {
		output.Issues = append(output.Issues, IssueOutput{
			Field:   e.Field,
			Code:    string(e.Code),
			Message: e.Message,
		})
	}

	if config.Output == OutputText {
		printTextResult(name, result, duration, config)
	}

	return output, !result.Valid
}

func printTextResult(name string, result *sv.Result, duration time.Duration, config *Config) {
	if config.Quiet && result.Valid {
		return
	}

	status := "VALID"
	if !result.Valid {
		status = "INVALID"
	}

	fmt.Printf("== %s ==\n", name)
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Errors: %d\n", result.ErrorCount())
	fmt.Printf("Duration: %s\n", duration.Round(time.Microsecond))

	if len(result.Errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range result.Errors {
			location := ""
			if e.Field != "" {
				location = fmt.Sprintf(" @ %s", e.Field)
			}
			fmt.Printf("  ERROR [%s] %s%s\n", e.Code, e.Message, location)
		}
	}

	fmt.Println()
}
