package error

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors for handshake preconditions.
var (
	// ErrParseFailure indicates a response body matched neither known envelope shape
	// or a JSON body had a non-object top level.
	ErrParseFailure = errors.New("response could not be parsed")

	// ErrMissingCertificateURL indicates the entitlement carries no certificate URL.
	ErrMissingCertificateURL = errors.New("entitlement is missing the certificate URL")

	// ErrMissingLicenseURL indicates the entitlement carries no license-acquisition URL.
	ErrMissingLicenseURL = errors.New("entitlement is missing the license acquisition URL")

	// ErrInvalidContentIdentifier indicates the content identifier could not be
	// derived from the key-request URL.
	ErrInvalidContentIdentifier = errors.New("invalid content identifier")

	// ErrMissingDataRequest indicates the platform had no pending data request
	// when the content key context was delivered.
	ErrMissingDataRequest = errors.New("no pending data request on key request")
)

// ServerError is a structured error reported by the backend, either through
// the XML error envelope or a JSON error body on an unacceptable status.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// NetworkError wraps a transport-level failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DRMError wraps whatever the underlying platform DRM primitive reported.
// It is passed through opaquely and never reinterpreted.
type DRMError struct {
	Err error
}

func (e *DRMError) Error() string {
	return "platform drm error: " + e.Err.Error()
}

func (e *DRMError) Unwrap() error {
	return e.Err
}

// ApiError is a custom error type to propagate HTTP status codes
// for strict error handling on the exposure REST surface.
type ApiError struct {
	StatusCode int
	Msg        string
}

func (e *ApiError) Error() string {
	return e.Msg
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Check for known connection error messages
	connectionErrors := []string{
		"connection refused",
		"no such host",
		"host unreachable",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"operation timed out",
		"EOF",
		"connection reset by peer",
		"dial tcp",
		"TLS handshake",
		"context deadline exceeded",
		"operation canceled",
	}

	for _, msg := range connectionErrors {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(msg)) {
			return true
		}
	}

	// Check for specific error types
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Try to unwrap and check nested error
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return IsConnectionError(unwrapped)
	}

	return false
}
