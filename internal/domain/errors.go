package domain

import (
	"errors"
	"fmt"
)

// ErrGateway is matched by every failed exchange with the movie database.
// Network failures, non-success statuses and malformed bodies are not told apart.
var ErrGateway = errors.New("movie database request failed")

// GatewayError describes a failed search request
type GatewayError struct {
	Op         string // e.g. "search movie"
	StatusCode int    // 0 when no response was received
	Err        error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	msg := ErrGateway.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is reports ErrGateway as a match so callers need only one check
func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}
