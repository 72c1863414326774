// Package ui provides terminal UI components for the ecobee-ctl CLI.
//
// This package uses Bubble Tea and Lipgloss to render the authorization
// flow and thermostat output. Most components follow a "render once and
// exit" pattern; the one interactive piece is the authorize-wait screen,
// which shows the PIN banner with a spinner and retries the token
// exchange until the user authorizes the app on the ecobee portal.
//
// # Logging Integration
//
// This package expects logging to be controlled via the ECOBEE_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent,
// allowing the curated UI output to be displayed cleanly.
package ui
