package errors

import "fmt"

// Error categories for the agent
var (
	ErrNoSteps           = fmt.Errorf("NO_ACTIONABLE_STEPS")
	ErrUnsupportedFile   = fmt.Errorf("UNSUPPORTED_FILE_TYPE")
	ErrFileNotFound      = fmt.Errorf("FILE_NOT_FOUND")
	ErrBadRecipient      = fmt.Errorf("BAD_RECIPIENT")
	ErrMissingCredential = fmt.Errorf("MISSING_CREDENTIAL")
)

// ConfigError wraps fatal configuration problems. It aborts the run before
// any send happens.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SendError wraps a single-step delivery failure. It is recorded in the run
// report; it never aborts the run.
type SendError struct {
	StepIndex int
	Recipient string
	Err       error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send step %d to %s failed: %v", e.StepIndex, e.Recipient, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
