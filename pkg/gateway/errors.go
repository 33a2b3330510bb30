package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
)

// ErrorKind categorizes a normalized backend failure. A single transport
// error can match several categories; normalization picks the most specific.
type ErrorKind string

const (
	ErrKindTimeout     ErrorKind = "timeout"
	ErrKindUnreachable ErrorKind = "unreachable"
	ErrKindBackend     ErrorKind = "backend"
	ErrKindNoResponse  ErrorKind = "no_response"
)

// BackendError is the single error type surfaced by the gateway. Message is
// always human-readable; StatusCode is 0 for transport-level failures.
type BackendError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	cause      error
}

func (e *BackendError) Error() string { return e.Message }

func (e *BackendError) Unwrap() error { return e.cause }

// normalizeTransportError maps errors from http.Client.Do into a
// BackendError. Priority order matters: timeout beats unreachable beats the
// generic no-response fallback.
func normalizeTransportError(err error, baseURL string) *BackendError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &BackendError{
			Kind:    ErrKindTimeout,
			Message: "Request timeout. The server is taking too long to respond.",
			cause:   err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &BackendError{
			Kind:    ErrKindTimeout,
			Message: "Request timeout. The server is taking too long to respond.",
			cause:   err,
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH) {
		return &BackendError{
			Kind:    ErrKindUnreachable,
			Message: fmt.Sprintf("Network error. Please check if the backend server is running on %s", baseURL),
			cause:   err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		var opErr *net.OpError
		if errors.As(urlErr.Err, &opErr) {
			return &BackendError{
				Kind:    ErrKindUnreachable,
				Message: fmt.Sprintf("Network error. Please check if the backend server is running on %s", baseURL),
				cause:   err,
			}
		}
	}

	// Request was sent but no usable response came back.
	return &BackendError{
		Kind:    ErrKindNoResponse,
		Message: fmt.Sprintf("No response from server. Please ensure the backend is running on %s", baseURL),
		cause:   err,
	}
}

// normalizeStatusError builds a BackendError from a non-2xx response body.
// The backend's own diagnostic wins when present: detail first, then message.
func normalizeStatusError(statusCode int, body []byte, fallback string) *BackendError {
	msg := extractErrorMessage(body)
	if msg == "" {
		msg = fallback
	}
	return &BackendError{
		Kind:       ErrKindBackend,
		StatusCode: statusCode,
		Message:    msg,
	}
}
