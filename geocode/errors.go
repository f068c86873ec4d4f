// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error represents a typed geocoding or coordinate-resolution failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Kind defines the categories of resolution failures.
type Kind int

const (
	// KindUnknown unknown failure.
	KindUnknown Kind = iota
	// KindMalformedCoordinate the explicit coordinate field could not be parsed.
	KindMalformedCoordinate
	// KindNotFound the place name produced no geocoding match.
	KindNotFound
	// KindTimeout the lookup timed out.
	KindTimeout
	// KindRateLimit the provider rejected the lookup for rate limiting.
	KindRateLimit
	// KindUnavailable the provider is unreachable or disabled.
	KindUnavailable
	// KindInvalidRequest the provider rejected the request itself.
	KindInvalidRequest
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsMalformedCoordinate reports whether the error is a coordinate-field parse failure.
func IsMalformedCoordinate(err error) bool {
	return kindOf(err) == KindMalformedCoordinate
}

// IsNotFound reports whether the error is a no-match result.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsTimeout reports whether the error is a lookup timeout.
func IsTimeout(err error) bool {
	if kindOf(err) == KindTimeout {
		return true
	}

	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// IsRateLimit reports whether the error is a rate-limit rejection.
func IsRateLimit(err error) bool {
	if kindOf(err) == KindRateLimit {
		return true
	}

	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429")
}

// IsUnavailable reports whether the error is a provider availability failure.
func IsUnavailable(err error) bool {
	return kindOf(err) == KindUnavailable
}

func kindOf(err error) Kind {
	var geoErr *Error
	if errors.As(err, &geoErr) {
		return geoErr.Kind
	}

	return KindUnknown
}

// classifyHTTPStatus maps an HTTP status code to a typed geocoding error.
func classifyHTTPStatus(statusCode int) *Error {
	switch statusCode {
	case http.StatusTooManyRequests:
		return &Error{
			Kind:    KindRateLimit,
			Message: "rate limit reached",
		}
	case http.StatusForbidden:
		return &Error{
			Kind:    KindRateLimit,
			Message: "quota exceeded or access denied",
		}
	case http.StatusBadRequest:
		return &Error{
			Kind:    KindInvalidRequest,
			Message: "invalid request",
		}
	case http.StatusNotFound:
		return &Error{
			Kind:    KindNotFound,
			Message: "place not found",
		}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return &Error{
			Kind:    KindUnavailable,
			Message: fmt.Sprintf("service unavailable (status %d)", statusCode),
		}
	default:
		return &Error{
			Kind:    KindUnknown,
			Message: fmt.Sprintf("HTTP error %d", statusCode),
		}
	}
}
