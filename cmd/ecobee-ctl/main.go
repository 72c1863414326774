// Ecobee-ctl is a command line client for ecobee thermostats.
//
// It manages the PIN-based authorization flow against the ecobee cloud
// API and exposes remote-control operations: mode changes, temperature
// and climate holds, vacations, program resume, and messages.
//
// Usage:
//
//	ecobee-ctl [command] [flags]
//
// Run 'ecobee-ctl authorize' first to pair the app with your account.
// See 'ecobee-ctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thermoctl/ecobee/internal/logging"
	"github.com/thermoctl/ecobee/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecobee-ctl",
	Short: "Ecobee Thermostat Remote Control",
	Long: `A command line client for ecobee thermostats.

Manages the PIN-based authorization flow against the ecobee cloud API
and provides remote-control operations: HVAC mode, temperature and
climate holds, vacations, program resume, and thermostat messages.

Credentials live in a YAML file under the user config directory; seed it
with your developer API key and run 'ecobee-ctl authorize' to pair.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ecobee-ctl %s\n", version.Full())
	},
}
