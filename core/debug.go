package core

// DebugWriter is the platform-supplied sink for diagnostic messages. The
// menu protocol owns the serial channel, so diagnostics must go elsewhere
// (a second UART, the host logger, a test buffer).
type DebugWriter func(string)

var (
	debugPrintln DebugWriter = func(string) {} // No-op by default

	// Disabled by default; scheduling diagnostics are only useful when
	// bringing up a new target.
	debugEnabled bool
)

// SetDebugWriter sets the platform-specific debug output function.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}
