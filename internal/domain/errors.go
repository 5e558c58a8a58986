package domain

import "fmt"

// Error types for consistent error handling across the BFA.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrExternalService indicates a failure in an external service call.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrNotConfigured indicates a remote provider has no credential or no usable client.
// It is a precondition failure, never a transport failure.
type ErrNotConfigured struct {
	Service string
	Reason  string
}

func (e *ErrNotConfigured) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not configured", e.Service)
	}
	return fmt.Sprintf("%s is not configured: %s", e.Service, e.Reason)
}

// ErrMalformedReply indicates a provider answered with a payload that is not
// the structured JSON object we asked for.
type ErrMalformedReply struct {
	Service string
	Err     error
}

func (e *ErrMalformedReply) Error() string {
	return fmt.Sprintf("malformed reply from %s: %v", e.Service, e.Err)
}

func (e *ErrMalformedReply) Unwrap() error {
	return e.Err
}
