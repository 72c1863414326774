package ecobee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"go.uber.org/zap"

	"github.com/thermoctl/ecobee/internal/logging"
)

// requestSpec describes one API request. Specs are built per call and
// never reused.
type requestSpec struct {
	method   string
	endpoint string
	// authFlow selects the bare OAuth endpoints (no bearer header) over
	// the versioned thermostat API
	authFlow bool
	params   url.Values
	body     any
	// action labels the operation for logging and error context
	action string
}

// request issues a single API call and classifies the outcome. A nil
// error means a success status was received and the returned bytes hold
// the (valid) JSON response body. The client never retries; refresh-and-
// retry policy belongs to the caller.
func (c *Client) request(spec requestSpec) (json.RawMessage, error) {
	target := fmt.Sprintf("%s/%s", c.BaseURL, spec.endpoint)
	headers := http.Header{}
	if !spec.authFlow {
		target = fmt.Sprintf("%s/%s/%s", c.BaseURL, APIVersion, spec.endpoint)
		headers.Set("Content-Type", "application/json;charset=UTF-8")
		headers.Set("Authorization", "Bearer "+c.creds.AccessToken)
	}

	var reqBody io.Reader
	var bodyJSON []byte
	if spec.body != nil {
		data, err := json.Marshal(spec.body)
		if err != nil {
			return nil, newConnectivityError(spec.action, fmt.Errorf("failed to encode request body: %w", err))
		}
		bodyJSON = data
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(spec.method, target, reqBody)
	if err != nil {
		return nil, newConnectivityError(spec.action, err)
	}
	req.Header = headers
	if len(spec.params) > 0 {
		req.URL.RawQuery = spec.params.Encode()
	}

	logging.LogAPIRequest(spec.method, target, spec.action, spec.params, bodyJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			logging.Error("connection to ecobee timed out",
				zap.String("action", spec.action), zap.Error(err))
			return nil, newTimeoutError(spec.action, err)
		}
		logging.Error("error connecting to ecobee",
			zap.String("action", spec.action), zap.Error(err))
		return nil, newConnectivityError(spec.action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newConnectivityError(spec.action, fmt.Errorf("failed to read response body: %w", err))
	}

	logging.LogAPIResponse(resp.StatusCode, spec.action, body)

	if err := classify(resp.StatusCode, body, spec.authFlow, spec.action); err != nil {
		c.observe(err)
		return nil, err
	}

	// A success status with an unparsable body is indistinguishable from a
	// truncated transfer; surface it as a transport failure.
	if !json.Valid(body) {
		return nil, newConnectivityError(spec.action, fmt.Errorf("success response carried invalid JSON"))
	}

	return body, nil
}

// isTimeout reports whether err is a request timeout, unwrapping the
// url.Error layer the http client adds.
func isTimeout(err error) bool {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Timeout()
	}
	return os.IsTimeout(err)
}
