package workflow

import "fmt"

// ConfigurationError is fatal: the agent cannot be built without a completion
// credential. Content-quality failures never surface as errors; they degrade
// inside their stage instead.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Reason, e.Err)
	}
	return "configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
