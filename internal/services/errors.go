package services

import "fmt"

// Error types

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// NotConfiguredError means the server has no credentials for the upstream model.
type NotConfiguredError struct{ Message string }

func (e *NotConfiguredError) Error() string { return e.Message }

// UpstreamError wraps a failed call to the model provider.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("gemini %s: %v", e.Op, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }
