package models

import "fmt"

// Custom errors shared by the provider clients and the HTTP layer.

// ConfigurationError signals a missing or unusable credential. Handlers map
// it to 503 so the UI can tell the user which key to set.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ProviderError wraps a failed upstream API call.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s request failed (status %d): %s", e.Provider, e.Status, e.Message)
}

// ParseError signals a malformed upstream response body.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}
