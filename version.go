package schemavalidator

// Version is the library version, used by the CLI and for diagnostics.
const Version = "0.1.0"
