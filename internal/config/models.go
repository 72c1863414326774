package config

// Credentials holds everything the client needs to talk to the ecobee
// API. APIKey is required; the remaining fields are populated
// progressively as the PIN handshake advances and rewritten on every
// token refresh.
type Credentials struct {
	APIKey            string `yaml:"api_key"`
	AccessToken       string `yaml:"access_token,omitempty"`
	RefreshToken      string `yaml:"refresh_token,omitempty"`
	AuthorizationCode string `yaml:"authorization_code,omitempty"`
	// Pin is only held while a handshake awaits portal authorization;
	// it is cleared once tokens are issued and never persisted.
	Pin string `yaml:"-"`
	// IncludeNotifications requests notification settings with each
	// thermostat fetch.
	IncludeNotifications bool `yaml:"include_notifications"`
}

// Store persists credentials between runs. The client loads once at
// construction and saves after every successful token exchange.
type Store interface {
	Load() (*Credentials, error)
	Save(*Credentials) error
}
