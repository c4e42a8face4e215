package client

// Exit codes used by the CLI
const (
	// Success
	ExitSuccess = 0
	// General error (transport, API, decode failures)
	ExitGeneralError = 1
	// Usage error (malformed flags, unknown command)
	ExitUsageError = 2
)

// ExitError represents an error with a specific exit code
type ExitError struct {
	Message string
	Code    int
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return e.Message
}

// NewExitError creates a new ExitError
func NewExitError(message string, code int) *ExitError {
	return &ExitError{Message: message, Code: code}
}

// NewAPIError creates a transport/API error (exit code 1)
func NewAPIError(message string) *ExitError {
	return &ExitError{Message: message, Code: ExitGeneralError}
}

// NewUsageError creates a usage error (exit code 2)
func NewUsageError(message string) *ExitError {
	return &ExitError{Message: message, Code: ExitUsageError}
}
