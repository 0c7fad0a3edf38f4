// Package resilience classifies provider failures so they can be absorbed
// and logged uniformly.
package resilience

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
)

// FailureKind is the category of a failed provider call.
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureMalformed FailureKind = "malformed"
	FailureUnknown   FailureKind = "unknown"
)

// StatusCoder is implemented by provider errors that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// MalformedError marks a response that arrived but could not be used.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return e.Err.Error()
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// NewMalformedError wraps err as a malformed-response failure.
func NewMalformedError(err error) *MalformedError {
	return &MalformedError{Err: err}
}

// Classify returns the failure category of err. A nil error is FailureNone.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		return FailureStatus
	}

	var me *MalformedError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &me) || errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return FailureMalformed
	}

	if IsTransport(err) {
		return FailureTransport
	}

	return FailureUnknown
}

// IsTransport returns true if the error (or any error in its chain) looks like
// a network-level failure: timeouts, connection resets, DNS failures.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Connection reset / refused / DNS.
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	// String-based heuristics for wrapped errors from HTTP clients.
	msg := strings.ToLower(err.Error())
	transportPatterns := []string{
		"connection reset by peer",
		"connection refused",
		"broken pipe",
		"temporary failure in name resolution",
		"no such host",
		"tls handshake timeout",
		"i/o timeout",
		"server closed idle connection",
	}
	for _, p := range transportPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}
