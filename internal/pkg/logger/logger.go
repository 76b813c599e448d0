// Package logger provides the process-wide structured logger shared by the CLI,
// the REST API and the cryptographic processors.
package logger

// Logger is a leveled logger taking fmt.Sprint style arguments.
// Implementations must never be handed key bytes, plaintext or signatures.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	// Fatal logs at error level and exits the process with status 1.
	Fatal(args ...interface{})
	// Panic logs at error level and panics with the formatted message.
	Panic(args ...interface{})
}
