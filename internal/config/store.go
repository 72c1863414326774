package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName         = "ecobee-ctl"
	credentialsFile = "credentials.yaml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the
// application:
//   - Linux: $XDG_CONFIG_HOME/ecobee-ctl or $HOME/.config/ecobee-ctl
//   - macOS: $HOME/.config/ecobee-ctl
//   - Windows: %LOCALAPPDATA%\ecobee-ctl
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetCredentialsPath returns the full path to the default credentials
// file.
func GetCredentialsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, credentialsFile), nil
}

// FileStore persists credentials as a YAML file. Writes are atomic
// (temp file + rename) and the file is created with user-only
// permissions since it holds API tokens.
type FileStore struct {
	// Path is the credentials file location
	Path string

	mu sync.Mutex
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// NewDefaultFileStore creates a store backed by the default credentials
// path under the user config directory.
func NewDefaultFileStore() (*FileStore, error) {
	path, err := GetCredentialsPath()
	if err != nil {
		return nil, err
	}
	return &FileStore{Path: path}, nil
}

// Load reads credentials from disk. A missing file is an error: the user
// must seed the file with an API key before the client can run.
func (s *FileStore) Load() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("credentials file not found at %s: %w", s.Path, err)
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return &creds, nil
}

// Save writes credentials to disk atomically.
func (s *FileStore) Save(creds *Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if creds == nil {
		return fmt.Errorf("credentials cannot be nil")
	}

	dir := filepath.Dir(s.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	header := []byte(`# ecobee-ctl credentials
# This file holds the ecobee developer API key and the tokens obtained
# through the PIN authorization flow. Keep it private.

`)
	data = append(header, data...)

	// Write to temporary file first, then rename (atomic on all platforms)
	tmpPath := s.Path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary credentials file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save credentials file: %w", err)
	}

	return nil
}

// MemoryStore holds credentials in memory. It serves embedding hosts that
// manage persistence themselves, and tests.
type MemoryStore struct {
	creds Credentials
}

// NewMemoryStore creates a store seeded with the given credentials.
func NewMemoryStore(creds Credentials) *MemoryStore {
	return &MemoryStore{creds: creds}
}

// Load returns a copy of the held credentials.
func (s *MemoryStore) Load() (*Credentials, error) {
	creds := s.creds
	return &creds, nil
}

// Save replaces the held credentials.
func (s *MemoryStore) Save(creds *Credentials) error {
	if creds == nil {
		return fmt.Errorf("credentials cannot be nil")
	}
	s.creds = *creds
	return nil
}
