package schemavalidator

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Transforms != true {
		t.Error("Transforms should be true by default")
	}
	if opts.Strict != false {
		t.Error("Strict should be false by default")
	}
	if opts.ErrorMode != CollectAll {
		t.Errorf("ErrorMode = %q; want %q", opts.ErrorMode, CollectAll)
	}
}

func TestErrorMode_IsValid(t *testing.T) {
	if !CollectAll.IsValid() {
		t.Error("CollectAll should be valid")
	}
	if !CollectFirst.IsValid() {
		t.Error("CollectFirst should be valid")
	}
	for _, m := range []ErrorMode{"", "some", "ALL"} {
		if m.IsValid() {
			t.Errorf("%q should not be valid", m)
		}
	}
}

func TestWithTransforms(t *testing.T) {
	opts := DefaultOptions()
	WithTransforms(false)(opts)

	if opts.Transforms {
		t.Error("Transforms should be false")
	}
}

func TestWithStrictMode(t *testing.T) {
	opts := DefaultOptions()
	WithStrictMode(true)(opts)

	if !opts.Strict {
		t.Error("Strict should be true")
	}
}

func TestWithErrorMode(t *testing.T) {
	opts := DefaultOptions()
	WithErrorMode(CollectFirst)(opts)

	if opts.ErrorMode != CollectFirst {
		t.Errorf("ErrorMode = %q; want %q", opts.ErrorMode, CollectFirst)
	}

	// Unrecognized modes leave the current mode in place.
	WithErrorMode("bogus")(opts)
	if opts.ErrorMode != CollectFirst {
		t.Errorf("ErrorMode = %q; want %q after bogus mode", opts.ErrorMode, CollectFirst)
	}
}

func TestWithFailFast(t *testing.T) {
	opts := DefaultOptions()
	WithFailFast()(opts)

	if opts.ErrorMode != CollectFirst {
		t.Errorf("ErrorMode = %q; want %q", opts.ErrorMode, CollectFirst)
	}
}

func TestStrictOptions(t *testing.T) {
	opts := DefaultOptions()
	for _, opt := range StrictOptions() {
		opt(opts)
	}

	if !opts.Strict {
		t.Error("Strict should be true")
	}
	if opts.ErrorMode != CollectAll {
		t.Errorf("ErrorMode = %q; want %q", opts.ErrorMode, CollectAll)
	}
	if !opts.Transforms {
		t.Error("Transforms should remain enabled")
	}
}
