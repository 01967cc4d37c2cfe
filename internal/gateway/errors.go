package gateway

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrSessionExpired means a 401 whose message matched one of the known
// token-related phrases. It asks for a re-login; every other 401 is an
// ordinary domain error surfaced to the caller.
var ErrSessionExpired = errors.New("session expired, please log in again")

// sessionPhrases are the backend messages that indicate a dead token rather
// than a domain-level authorization failure.
var sessionPhrases = []string{
	"token expired",
	"jwt expired",
	"invalid token",
	"invalid signature",
	"authorization token required",
	"token is not valid",
}

func isSessionFailure(message string) bool {
	msg := strings.ToLower(message)
	for _, p := range sessionPhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// APIError is a non-2xx response with its decoded message. It covers both
// domain-level 401s ("payment status not available") and plain 4xx/5xx.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// DecodeError means the response body did not match the endpoint's envelope.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NetworkError wraps transport-level failures (refused, reset, timeout).
// These are the only errors the client considers retryable.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// IsRetryable reports whether the error came from the transport rather than
// the backend, i.e. whether an identical retry could succeed.
func IsRetryable(err error) bool {
	var nErr *NetworkError
	return errors.As(err, &nErr)
}
