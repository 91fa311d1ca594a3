package schemavalidator

// ErrorMode governs how the engine accumulates validation errors.
type ErrorMode string

const (
	// CollectAll gathers every error across all fields before returning.
	CollectAll ErrorMode = "all"
	// CollectFirst halts validation at the first discovered error.
	CollectFirst ErrorMode = "first"
)

// IsValid returns true if this is a recognized error mode.
func (m ErrorMode) IsValid() bool {
	return m == CollectAll || m == CollectFirst
}

// Option configures a validation engine.
type Option func(*Options)

// Options holds all configuration recognized by the engine.
type Options struct {
	// Transforms gates field transform functions. When false, transforms
	// are never invoked and raw validated values pass through unchanged.
	Transforms bool

	// Strict rejects data keys absent from the schema. When false,
	// unknown keys pass through to the output untouched.
	Strict bool

	// ErrorMode selects stop-at-first or collect-all error accumulation.
	ErrorMode ErrorMode
}

// DefaultOptions returns the default configuration: transforms enabled,
// strict mode off, all errors collected.
func DefaultOptions() *Options {
	return &Options{
		Transforms: true,
		Strict:     false,
		ErrorMode:  CollectAll,
	}
}

// WithTransforms enables or disables field transforms.
func WithTransforms(enable bool) Option {
	return func(o *Options) {
		o.Transforms = enable
	}
}

// WithStrictMode enables or disables rejection of unknown data keys.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.Strict = enable
	}
}

// WithErrorMode sets the error collection mode.
// Unrecognized modes are ignored.
func WithErrorMode(mode ErrorMode) Option {
	return func(o *Options) {
		if mode.IsValid() {
			o.ErrorMode = mode
		}
	}
}

// WithFailFast is shorthand for WithErrorMode(CollectFirst).
func WithFailFast() Option {
	return WithErrorMode(CollectFirst)
}

// StrictOptions returns options for strict validation: unknown keys are
// rejected and every error is reported.
func StrictOptions() []Option {
	return []Option{
		WithStrictMode(true),
		WithErrorMode(CollectAll),
	}
}
