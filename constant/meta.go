// Package constant defines immutable application-level identifiers and defaults.
package constant

const (
	// Framecast is the canonical application identifier used for filesystem paths and CLI branding.
	Framecast = "framecast"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// Client and Device are the default identifiers reported to the media server
	// during authentication and on the telemetry socket.
	Client = "Framecast"
	Device = "Framecast Display"
)

// Build metadata, overridable at link time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
