package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "ecobee-ctl") {
		t.Errorf("GetConfigDir() = %v, should contain 'ecobee-ctl'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetCredentialsPath(t *testing.T) {
	path, err := GetCredentialsPath()
	if err != nil {
		t.Fatalf("GetCredentialsPath() error = %v", err)
	}

	if filepath.Base(path) != "credentials.yaml" {
		t.Errorf("GetCredentialsPath() should end with 'credentials.yaml', got: %v", path)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	store := NewFileStore(path)

	creds := &Credentials{
		APIKey:               "test-key",
		AccessToken:          "AT1",
		RefreshToken:         "RT1",
		AuthorizationCode:    "AUTH123",
		IncludeNotifications: true,
	}

	if err := store.Save(creds); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *creds {
		t.Errorf("Load() = %+v, want %+v", loaded, creds)
	}
}

func TestFileStore_NeverPersistsPin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	store := NewFileStore(path)

	creds := &Credentials{APIKey: "test-key", Pin: "ABCD-EFGH"}
	if err := store.Save(creds); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(data), "ABCD-EFGH") {
		t.Error("PIN must never be written to the credentials file")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Pin != "" {
		t.Errorf("loaded Pin = %q, want empty", loaded.Pin)
	}
}

func TestFileStore_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permission bits are not meaningful on Windows")
	}

	path := filepath.Join(t.TempDir(), "credentials.yaml")
	store := NewFileStore(path)

	if err := store.Save(&Credentials{APIKey: "test-key"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("credentials file mode = %o, want 0600", info.Mode().Perm())
	}
}

func TestFileStore_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.yaml")
	store := NewFileStore(path)

	if err := store.Save(&Credentials{APIKey: "k1"}); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := store.Save(&Credentials{APIKey: "k2"}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind after save", entry.Name())
		}
	}

	loaded, _ := store.Load()
	if loaded.APIKey != "k2" {
		t.Errorf("APIKey = %s, want k2", loaded.APIKey)
	}
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.yaml")
	store := NewFileStore(path)

	if err := store.Save(&Credentials{APIKey: "k"}); err != nil {
		t.Fatalf("Save() should create parent directories, error = %v", err)
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail when the credentials file does not exist")
	}
}

func TestFileStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte("api_key: [unclosed"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestFileStore_NilCredentials(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.yaml"))
	if err := store.Save(nil); err == nil {
		t.Error("Save(nil) should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(Credentials{APIKey: "k"})

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIKey != "k" {
		t.Errorf("APIKey = %s, want k", loaded.APIKey)
	}

	// Mutating the loaded copy must not affect the store
	loaded.AccessToken = "AT1"
	again, _ := store.Load()
	if again.AccessToken != "" {
		t.Error("Load() should return an independent copy")
	}

	if err := store.Save(&Credentials{APIKey: "k", AccessToken: "AT2"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	saved, _ := store.Load()
	if saved.AccessToken != "AT2" {
		t.Errorf("AccessToken = %s, want AT2", saved.AccessToken)
	}

	if err := store.Save(nil); err == nil {
		t.Error("Save(nil) should fail")
	}
}
