package ecobee

import (
	"fmt"
	"net/http"
	"time"

	"github.com/thermoctl/ecobee/internal/config"
)

const (
	// DefaultBaseURL is the production ecobee API endpoint
	DefaultBaseURL = "https://api.ecobee.com"

	// APIVersion is the versioned API path component for thermostat requests
	APIVersion = "1"

	// DefaultTimeout is the HTTP request timeout for all API calls
	DefaultTimeout = 10 * time.Second

	// Scope requested during the PIN handshake; smartWrite allows both
	// reading thermostat data and issuing updates
	Scope = "smartWrite"

	endpointAuthorize  = "authorize"
	endpointToken      = "token"
	endpointThermostat = "thermostat"
)

// AuthState tracks where the client sits in the authorization lifecycle.
// It is advanced by the token lifecycle methods and by classifier verdicts
// observed during authenticated calls.
type AuthState int

const (
	// StateUnauthenticated means no usable credentials exist; the flow
	// starts at RequestPin.
	StateUnauthenticated AuthState = iota
	// StatePinRequested means a PIN has been issued and is awaiting user
	// authorization on the ecobee portal.
	StatePinRequested
	// StateTokensIssued means access and refresh tokens are held.
	StateTokensIssued
	// StateExpired means the last authenticated call reported an expired
	// access token; RefreshTokens restores StateTokensIssued.
	StateExpired
	// StateInvalidated means the last call reported the credentials are
	// stale or revoked; the flow must restart at RequestPin.
	StateInvalidated
)

// String returns a human-readable name for the auth state
func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StatePinRequested:
		return "pin requested"
	case StateTokensIssued:
		return "tokens issued"
	case StateExpired:
		return "expired"
	case StateInvalidated:
		return "invalidated"
	default:
		return fmt.Sprintf("AuthState(%d)", s)
	}
}

// Client communicates with the ecobee cloud API on behalf of a single
// developer app. It owns the credentials loaded from its store and an
// in-memory cache of the last-fetched thermostat list.
//
// Client performs no internal locking; see the package documentation for
// the single-threaded access contract.
type Client struct {
	// BaseURL is the API endpoint, overridable for testing
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	store       config.Store
	creds       *config.Credentials
	state       AuthState
	thermostats []Thermostat
}

// NewClient creates a client backed by the given credential store. The
// store must yield credentials carrying at least an API key; tokens may be
// absent, in which case the client starts unauthenticated.
func NewClient(store config.Store) (*Client, error) {
	creds, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if creds.APIKey == "" {
		return nil, fmt.Errorf("no ecobee API key in credentials; unable to continue")
	}

	state := StateUnauthenticated
	switch {
	case creds.AccessToken != "" && creds.RefreshToken != "":
		state = StateTokensIssued
	case creds.AuthorizationCode != "":
		state = StatePinRequested
	}

	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		store:      store,
		creds:      creds,
		state:      state,
	}, nil
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// State returns the current authorization state.
func (c *Client) State() AuthState {
	return c.state
}

// PIN returns the PIN issued by the last RequestPin call, or the empty
// string if no handshake is in flight.
func (c *Client) PIN() string {
	return c.creds.Pin
}

// Credentials returns a copy of the credentials currently held by the
// client.
func (c *Client) Credentials() config.Credentials {
	return *c.creds
}

// observe applies classifier verdicts from any API call to the auth state
// machine. Transitions happen here and nowhere else so that every request
// path keeps the state consistent.
func (c *Client) observe(err error) {
	switch {
	case IsInvalidToken(err):
		c.state = StateInvalidated
	case IsExpiredToken(err):
		c.state = StateExpired
	}
}
