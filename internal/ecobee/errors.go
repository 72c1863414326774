package ecobee

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a failed API call.
type ErrorType int

const (
	// ErrTypeInvalidToken indicates the stored credentials are stale or
	// revoked. Recovery requires restarting the PIN handshake.
	ErrTypeInvalidToken ErrorType = iota
	// ErrTypeExpiredToken indicates the access token has expired. A token
	// refresh is sufficient; no new PIN is needed.
	ErrTypeExpiredToken
	// ErrTypeTimeout indicates the request did not complete within the
	// client timeout.
	ErrTypeTimeout
	// ErrTypeConnectivity indicates a non-timeout transport failure
	// (DNS, connection reset, unreadable response body).
	ErrTypeConnectivity
	// ErrTypeAPI indicates any other non-success response from ecobee, or
	// a success response missing expected fields. No specific recovery
	// applies.
	ErrTypeAPI
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidToken:
		return "Invalid Token"
	case ErrTypeExpiredToken:
		return "Expired Token"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectivity:
		return "Connectivity Error"
	case ErrTypeAPI:
		return "API Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError represents a failed call to the ecobee API. The Type field is
// the classifier verdict; callers react to invalid-token and expired-token
// verdicts specifically and treat everything else uniformly.
type APIError struct {
	Type       ErrorType // Category of error
	Action     string    // The operation being attempted (e.g. "request tokens")
	StatusCode int       // HTTP status code (0 for transport failures)
	Message    string    // Human-readable error message
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s while attempting to %s: %s (caused by: %v)", e.Type, e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("%s while attempting to %s: %s", e.Type, e.Action, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

func newInvalidTokenError(action string, statusCode int) *APIError {
	return &APIError{
		Type:       ErrTypeInvalidToken,
		Action:     action,
		StatusCode: statusCode,
		Message:    "ecobee tokens invalid; re-authorization required",
	}
}

func newExpiredTokenError(action string, statusCode int) *APIError {
	return &APIError{
		Type:       ErrTypeExpiredToken,
		Action:     action,
		StatusCode: statusCode,
		Message:    "ecobee access token expired; token refresh required",
	}
}

func newTimeoutError(action string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeTimeout,
		Action:  action,
		Message: "connection to ecobee timed out; possible connectivity outage",
		Err:     err,
	}
}

func newConnectivityError(action string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeConnectivity,
		Action:  action,
		Message: "error connecting to ecobee; possible connectivity outage",
		Err:     err,
	}
}

func newAPIError(action string, statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrTypeAPI,
		Action:     action,
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsInvalidToken reports whether err carries an invalid-token verdict,
// meaning the caller must restart the PIN handshake.
func IsInvalidToken(err error) bool {
	return hasType(err, ErrTypeInvalidToken)
}

// IsExpiredToken reports whether err carries an expired-token verdict,
// meaning the caller should refresh tokens and retry once.
func IsExpiredToken(err error) bool {
	return hasType(err, ErrTypeExpiredToken)
}

// IsTransport reports whether err is a transport-level failure (timeout or
// connectivity), as opposed to a response received from ecobee.
func IsTransport(err error) bool {
	return hasType(err, ErrTypeTimeout) || hasType(err, ErrTypeConnectivity)
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	return hasType(err, ErrTypeTimeout)
}

func hasType(err error, t ErrorType) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == t
	}
	return false
}
