package loader

import (
	"strings"
	"sync"
)

// Transform registry for schema documents. A document names a transform by
// its registered key; transform functions themselves cannot be expressed in
// YAML/JSON.
var (
	transformsMu sync.RWMutex
	transforms   = map[string]func(any) any{
		"trim":  trimTransform,
		"lower": lowerTransform,
		"upper": upperTransform,
	}
)

// RegisterTransform makes a named transform available to schema documents.
// Registering an existing name replaces it.
func RegisterTransform(name string, fn func(any) any) {
	transformsMu.Lock()
	defer transformsMu.Unlock()
	transforms[name] = fn
}

func lookupTransform(name string) (func(any) any, bool) {
	transformsMu.RLock()
	defer transformsMu.RUnlock()
	fn, ok := transforms[name]
	return fn, ok
}

// Built-in transforms operate on strings and pass other values through.

func trimTransform(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}

func lowerTransform(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(s)
	}
	return v
}

func upperTransform(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToUpper(s)
	}
	return v
}
