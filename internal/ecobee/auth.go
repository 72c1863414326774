package ecobee

import (
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/thermoctl/ecobee/internal/logging"
)

// pinResponse is the payload of a successful authorize call.
type pinResponse struct {
	AuthorizationCode string `json:"code"`
	EcobeePin         string `json:"ecobeePin"`
}

// tokenResponse is the payload of a successful token or refresh call.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RequestPin requests a new PIN from ecobee. On success the client holds
// the PIN (see PIN) and the paired authorization code, and the user must
// authorize the app on the ecobee consumer portal before RequestTokens
// can succeed.
func (c *Client) RequestPin() error {
	const action = "request pin"

	params := url.Values{}
	params.Set("response_type", "ecobeePin")
	params.Set("client_id", c.creds.APIKey)
	params.Set("scope", Scope)

	payload, err := c.request(requestSpec{
		method:   "GET",
		endpoint: endpointAuthorize,
		authFlow: true,
		params:   params,
		action:   action,
	})
	if err != nil {
		return err
	}

	var pin pinResponse
	if err := json.Unmarshal(payload, &pin); err != nil || pin.AuthorizationCode == "" || pin.EcobeePin == "" {
		return newAPIError(action, 0, "pin response missing code or ecobeePin")
	}

	c.creds.AuthorizationCode = pin.AuthorizationCode
	c.creds.Pin = pin.EcobeePin
	c.state = StatePinRequested

	logging.Debug("obtained ecobee authorization PIN",
		zap.String("pin", pin.EcobeePin))
	return nil
}

// RequestTokens exchanges the stored authorization code for access and
// refresh tokens. On success the credentials are persisted and the PIN is
// cleared.
func (c *Client) RequestTokens() error {
	const action = "request tokens"

	params := url.Values{}
	params.Set("grant_type", "ecobeePin")
	params.Set("code", c.creds.AuthorizationCode)
	params.Set("client_id", c.creds.APIKey)

	payload, err := c.request(requestSpec{
		method:   "POST",
		endpoint: endpointToken,
		authFlow: true,
		params:   params,
		action:   action,
	})
	if err != nil {
		return err
	}

	return c.adoptTokens(action, payload)
}

// RefreshTokens trades the stored refresh token for a fresh token pair.
// On success the credentials are persisted and the client returns to the
// tokens-issued state.
func (c *Client) RefreshTokens() error {
	const action = "refresh tokens"

	params := url.Values{}
	params.Set("grant_type", "refresh_token")
	params.Set("refresh_token", c.creds.RefreshToken)
	params.Set("client_id", c.creds.APIKey)

	payload, err := c.request(requestSpec{
		method:   "POST",
		endpoint: endpointToken,
		authFlow: true,
		params:   params,
		action:   action,
	})
	if err != nil {
		return err
	}

	return c.adoptTokens(action, payload)
}

// adoptTokens extracts a token pair from a successful token-endpoint
// payload, persists the credentials, and advances the state machine. The
// PIN is cleared before the save so stores never capture it.
func (c *Client) adoptTokens(action string, payload json.RawMessage) error {
	var tokens tokenResponse
	if err := json.Unmarshal(payload, &tokens); err != nil || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return newAPIError(action, 0, "token response missing access_token or refresh_token")
	}

	c.creds.AccessToken = tokens.AccessToken
	c.creds.RefreshToken = tokens.RefreshToken
	c.creds.Pin = ""
	c.state = StateTokensIssued

	if err := c.store.Save(c.creds); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	logging.Debug("obtained tokens from ecobee")
	return nil
}
