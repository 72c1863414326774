// Package config provides credential persistence for the ecobee client.
//
// Credentials (API key, authorization code, access and refresh tokens)
// are persisted through the Store interface. Two implementations exist:
// FileStore keeps a YAML file under the OS-appropriate user config
// directory, and MemoryStore holds credentials in memory for embedding
// hosts and tests. The client saves through the store after every
// successful token exchange, so a restart resumes from the last issued
// token pair.
//
// # Credentials File Location
//
// The default FileStore path follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/ecobee-ctl/credentials.yaml or
//     $HOME/.config/ecobee-ctl/credentials.yaml
//   - macOS: $HOME/.config/ecobee-ctl/credentials.yaml
//   - Windows: %LOCALAPPDATA%\ecobee-ctl\credentials.yaml
//
// The file is written atomically with user-only permissions: it contains
// live API tokens.
//
// # Bootstrapping
//
// A first run needs a file seeded with the developer API key:
//
//	api_key: "0000000000000000000000000000000000000000"
//
// Everything else is filled in by the authorization flow.
package config
