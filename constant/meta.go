// Package constant defines immutable application-level identifiers.
package constant

const (
	// Stackr is the canonical application identifier used for filesystem paths and CLI branding.
	Stackr = "stackr"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
