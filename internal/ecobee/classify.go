package ecobee

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/thermoctl/ecobee/internal/logging"
)

// apiStatus is the status object ecobee embeds in error payloads on the
// versioned API. The code field carries the vendor error taxonomy.
type apiStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorPayload covers both error body shapes ecobee produces: the OAuth
// endpoints use a top-level "error" field, the thermostat endpoint wraps
// a status object.
type errorPayload struct {
	Error  string     `json:"error"`
	Status *apiStatus `json:"status"`
}

// Vendor status codes returned with HTTP 500 on the versioned API.
const (
	statusCodeNotAuthorized = 1  // credentials stale or revoked
	statusCodeDeauthorized  = 16 // app deauthorized by the user
	statusCodeTokenExpired  = 14 // access token expired
	oauthErrorInvalidGrant  = "invalid_grant"
	defaultFailureMessage   = "Unknown error"
)

// classify interprets a received HTTP response and returns nil for a
// success status or a typed *APIError otherwise. Auth-flow requests and
// versioned API requests carry different error taxonomies, selected by
// authFlow.
//
// Malformed error bodies never fail classification: the payload degrades
// to an empty object and the response is absorbed as a generic failure.
func classify(statusCode int, body []byte, authFlow bool, action string) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logging.Debug("invalid JSON payload in ecobee error response",
			zap.String("action", action),
			zap.Int("status_code", statusCode),
		)
		payload = errorPayload{}
	}

	if authFlow {
		if statusCode == http.StatusBadRequest && payload.Error == oauthErrorInvalidGrant {
			return newInvalidTokenError(action, statusCode)
		}
		logging.Error("error requesting authorization from ecobee",
			zap.String("action", action),
			zap.Int("status_code", statusCode),
			zap.String("body", string(body)),
		)
		return newAPIError(action, statusCode, fmt.Sprintf("authorization request rejected with status %d", statusCode))
	}

	if statusCode == http.StatusInternalServerError && payload.Status != nil {
		switch payload.Status.Code {
		case statusCodeNotAuthorized, statusCodeDeauthorized:
			return newInvalidTokenError(action, statusCode)
		case statusCodeTokenExpired:
			return newExpiredTokenError(action, statusCode)
		}
	}

	message := defaultFailureMessage
	code := 0
	if payload.Status != nil {
		code = payload.Status.Code
		if payload.Status.Message != "" {
			message = payload.Status.Message
		}
	}
	logging.Error("error from ecobee",
		zap.String("action", action),
		zap.Int("status_code", statusCode),
		zap.Int("ecobee_code", code),
		zap.String("message", message),
	)
	return newAPIError(action, statusCode, message)
}
