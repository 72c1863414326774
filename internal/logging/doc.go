// Package logging provides structured logging for the ecobee client.
//
// This package wraps the zap logger with convenience functions for the
// logging patterns used by the API transport, plus redaction helpers that
// keep tokens and authorization codes out of log output.
//
// # Configuration
//
// Logging is controlled by the ECOBEE_LOG_LEVEL environment variable.
// When unset, logging is silent so the curated CLI output stays clean.
// Set it to "debug" to see the full request/response diagnostics the
// transport emits:
//
//	ECOBEE_LOG_LEVEL=debug ecobee-ctl list
//
// # Redaction
//
// Request diagnostics pass query parameters through RedactParams before
// logging; the Authorization header is never logged at all. Response
// bodies are logged verbatim, which at debug level includes issued
// tokens - this is a deliberate trade-off for troubleshooting the
// handshake.
package logging
