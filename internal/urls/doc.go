// Package urls provides centralized constants for the vendor URLs used
// throughout the application.
//
// This package was created to enable URL updates without hunting through
// code. All vendor-facing URLs are defined here as exported constants and
// can be updated in a single location before release.
//
// Usage:
//
//	import "github.com/thermoctl/ecobee/internal/urls"
//
//	fmt.Printf("Authorize the app at: %s\n", urls.ConsumerPortal)
package urls
