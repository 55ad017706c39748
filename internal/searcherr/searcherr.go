// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package searcherr defines the typed error taxonomy surfaced by the
// search client boundary. Every failure leaving the client is one of
// these codes; untyped errors are wrapped rather than propagated raw.
package searcherr

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Code identifies a failure category.
type Code string

const (
	// CodeInvalidQuery marks an empty or whitespace-only query, raised
	// before any network attempt.
	CodeInvalidQuery Code = "INVALID_QUERY"

	// CodeInvalidAPIKey marks credentials rejected by the provider (401).
	CodeInvalidAPIKey Code = "INVALID_API_KEY"

	// CodeRateLimitExceeded marks provider throttling (429); RetryAfter
	// carries the parsed backoff hint when the provider sent one.
	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"

	// CodeTimeout marks the local request timeout firing; no partial
	// data is returned.
	CodeTimeout Code = "TIMEOUT"

	// CodeNetworkError marks a transport-level failure (DNS, connection
	// reset) wrapping the underlying cause.
	CodeNetworkError Code = "NETWORK_ERROR"

	// CodeAccessForbidden marks provider HTTP 403.
	CodeAccessForbidden Code = "ACCESS_FORBIDDEN"

	// CodeServerError marks provider HTTP 5xx.
	CodeServerError Code = "SERVER_ERROR"

	// CodeHTTPError is the catch-all for remaining provider HTTP failures.
	CodeHTTPError Code = "HTTP_ERROR"

	// CodeUnknown wraps any error that is not already typed, preserving
	// the original message.
	CodeUnknown Code = "UNKNOWN_ERROR"
)

// Error is the common base carried by every typed failure.
type Error struct {
	Code       Code
	Message    string
	HTTPStatus int
	// RetryAfter is the provider backoff hint in seconds, set only for
	// CodeRateLimitExceeded. Backing off is the caller's responsibility.
	RetryAfter int
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// InvalidQuery reports an empty or whitespace-only query.
func InvalidQuery() *Error {
	return &Error{Code: CodeInvalidQuery, Message: "query must not be empty"}
}

// Timeout reports the local timeout firing. The HTTP-equivalent status
// is 408 even though no response was received.
func Timeout(cause error) *Error {
	return &Error{
		Code:       CodeTimeout,
		Message:    "search request timed out",
		HTTPStatus: http.StatusRequestTimeout,
		Cause:      cause,
	}
}

// Network wraps a transport-level failure.
func Network(cause error) *Error {
	return &Error{
		Code:    CodeNetworkError,
		Message: fmt.Sprintf("network failure: %v", cause),
		Cause:   cause,
	}
}

// FromStatus maps a non-OK provider HTTP status to a typed error.
// retryAfterHeader is the raw Retry-After header value, parsed only for
// 429 responses.
func FromStatus(status int, body string, retryAfterHeader string) *Error {
	msg := strings.TrimSpace(body)
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return &Error{Code: CodeInvalidAPIKey, Message: msg, HTTPStatus: status}
	case status == http.StatusForbidden:
		return &Error{Code: CodeAccessForbidden, Message: msg, HTTPStatus: status}
	case status == http.StatusTooManyRequests:
		return &Error{
			Code:       CodeRateLimitExceeded,
			Message:    msg,
			HTTPStatus: status,
			RetryAfter: parseRetryAfter(retryAfterHeader),
		}
	case status >= 500:
		return &Error{Code: CodeServerError, Message: msg, HTTPStatus: status}
	default:
		return &Error{Code: CodeHTTPError, Message: msg, HTTPStatus: status}
	}
}

// Wrap returns err unchanged when it is already typed, and wraps
// anything else as CodeUnknown preserving the original message.
func Wrap(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return &Error{Code: CodeUnknown, Message: err.Error(), Cause: err}
}

// IsCode reports whether err is a typed error with the given code.
func IsCode(err error, code Code) bool {
	var typed *Error
	return errors.As(err, &typed) && typed.Code == code
}

// parseRetryAfter handles the delay-seconds form of the Retry-After
// header. The HTTP-date form is rare on rate limits and is ignored.
func parseRetryAfter(header string) int {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}
