// Package ecobee implements a client for the ecobee cloud thermostat API.
//
// The client manages the PIN-based authorization handshake, access/refresh
// token lifecycle, and remote-control operations (modes, holds, vacations,
// messages) against the thermostats registered to an ecobee developer app.
//
// # Authorization Flow
//
// ecobee uses an out-of-band PIN flow rather than a redirect-based OAuth
// flow:
//
//  1. RequestPin obtains a short PIN and an authorization code.
//  2. The user enters the PIN under My Apps on the ecobee consumer portal.
//  3. RequestTokens exchanges the authorization code for access and
//     refresh tokens, which are persisted through the configured
//     credential store.
//
// Access tokens expire after a short interval. When an authenticated call
// fails with an expired-token verdict, the caller refreshes with
// RefreshTokens and retries the operation once. When it fails with an
// invalid-token verdict the stored credentials are no longer usable and
// the flow restarts at RequestPin. Use IsExpiredToken and IsInvalidToken
// to distinguish the two; every other failure is reported as a generic
// *APIError and requires no specific recovery.
//
// # Thermostat Registry
//
// Fetch downloads the full thermostat list and caches it on the client.
// All other thermostat operations address a thermostat by its position in
// that cached list. Indices are only meaningful against the fetch that
// produced them; a later Fetch replaces the list wholesale and may reorder
// it.
//
// # Concurrency
//
// A Client is not safe for concurrent use. Token refresh rewrites
// credential state that in-flight requests read, so callers that share a
// client across goroutines must serialize access themselves.
package ecobee
