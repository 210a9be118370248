package capability

import "fmt"

// InitError records a capability initialization failure detected at probe
// time. It is never returned from Probe; it lives on in Capability.Reason.
type InitError struct {
	Capability ID
	Err        error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("capability %s failed to initialize: %v", e.Capability, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// BackendError reports a backend call that failed during dispatch. It is
// transient and retryable; it does not change the capability's status.
type BackendError struct {
	Capability ID
	Backend    string
	Err        error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend %q: %v", e.Capability, e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// InputError reports invalid user input, such as empty text or an unknown
// capability. Callers should reprompt.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}
