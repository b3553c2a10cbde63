package constant

// Supported operating system identifiers as reported by runtime.GOOS.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
)
