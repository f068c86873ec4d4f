// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"net/http"
	"testing"
)

func TestIsRateLimit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limit kind",
			err:  &Error{Kind: KindRateLimit, Message: "rate limit reached"},
			want: true,
		},
		{
			name: "message contains rate limit",
			err:  errors.New("rate limit exceeded"),
			want: true,
		},
		{
			name: "message contains 429",
			err:  errors.New("nominatim returned status 429"),
			want: true,
		},
		{
			name: "other kind",
			err:  &Error{Kind: KindNotFound, Message: "not found"},
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimit(tt.err); got != tt.want {
				t.Errorf("IsRateLimit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "timeout kind",
			err:  &Error{Kind: KindTimeout, Message: "geocoding lookup timed out"},
			want: true,
		},
		{
			name: "message contains deadline exceeded",
			err:  errors.New("context deadline exceeded"),
			want: true,
		},
		{
			name: "wrapped timeout kind",
			err:  errors.Join(errors.New("resolving"), &Error{Kind: KindTimeout, Message: "slow"}),
			want: true,
		},
		{
			name: "other kind",
			err:  &Error{Kind: KindUnavailable, Message: "unreachable"},
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{name: "too many requests", status: http.StatusTooManyRequests, want: KindRateLimit},
		{name: "forbidden", status: http.StatusForbidden, want: KindRateLimit},
		{name: "bad request", status: http.StatusBadRequest, want: KindInvalidRequest},
		{name: "not found", status: http.StatusNotFound, want: KindNotFound},
		{name: "service unavailable", status: http.StatusServiceUnavailable, want: KindUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, want: KindUnavailable},
		{name: "teapot", status: http.StatusTeapot, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyHTTPStatus(tt.status); got.Kind != tt.want {
				t.Errorf("classifyHTTPStatus(%d).Kind = %v, want %v", tt.status, got.Kind, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &Error{Kind: KindUnavailable, Message: "geocoding request failed", Err: inner}

	if !errors.Is(err, inner) {
		t.Errorf("expected wrapped error to be found by errors.Is")
	}

	if err.Error() != "geocoding request failed: connection refused" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
