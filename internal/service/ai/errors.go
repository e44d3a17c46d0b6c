package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Upstream failure taxonomy. Every variant wraps ErrUpstream so callers
// can treat all of them identically: abort the action, surface one
// message, never retry. The variants only add detail for logs.
var (
	ErrUpstream           = errors.New("upstream request failed")
	ErrUnavailable        = fmt.Errorf("%w: service unavailable", ErrUpstream)
	ErrRateLimited        = fmt.Errorf("%w: rate limited", ErrUpstream)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUpstream)
	ErrTimeout            = fmt.Errorf("%w: request timed out", ErrUpstream)
)

// classifyStatus maps an HTTP status from a provider API error onto the
// taxonomy, keeping the original error text for logging.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

// classifyTransport handles failures that never produced an API response.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
