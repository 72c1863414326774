package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thermoctl/ecobee/internal/config"
	"github.com/thermoctl/ecobee/internal/ecobee"
	"github.com/thermoctl/ecobee/internal/ui"
	"github.com/thermoctl/ecobee/internal/urls"
)

// Command flags
var (
	credentialsPath string
	thermostatIndex int

	noWait   bool
	exchange bool

	holdType  string
	holdHours string
	coolTemp  float64
	heatTemp  float64

	vacationStartDate string
	vacationStartTime string
	vacationEndDate   string
	vacationEndTime   string

	resumeAll bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", "", "Credentials file (default: user config dir)")
	rootCmd.PersistentFlags().IntVarP(&thermostatIndex, "thermostat", "t", 0, "Thermostat index from 'ecobee-ctl list'")

	authorizeCmd.Flags().BoolVar(&noWait, "no-wait", false, "Print the PIN and exit without waiting for authorization")
	authorizeCmd.Flags().BoolVar(&exchange, "exchange", false, "Exchange a previously issued PIN for tokens")

	holdCmd.Flags().Float64Var(&coolTemp, "cool", 0, "Cool hold temperature in degrees")
	holdCmd.Flags().Float64Var(&heatTemp, "heat", 0, "Heat hold temperature in degrees")
	holdCmd.Flags().StringVar(&holdType, "type", ecobee.DefaultHoldType, "Hold type (nextTransition, indefinite, holdHours)")
	holdCmd.Flags().StringVar(&holdHours, "hours", "2", "Hold duration when --type holdHours")
	_ = holdCmd.MarkFlagRequired("cool")
	_ = holdCmd.MarkFlagRequired("heat")

	climateCmd.Flags().StringVar(&holdType, "type", ecobee.DefaultHoldType, "Hold type (nextTransition, indefinite, holdHours)")

	fanCmd.Flags().Float64Var(&coolTemp, "cool", 0, "Cool hold temperature in degrees")
	fanCmd.Flags().Float64Var(&heatTemp, "heat", 0, "Heat hold temperature in degrees")
	fanCmd.Flags().StringVar(&holdType, "type", ecobee.DefaultHoldType, "Hold type (nextTransition, indefinite, holdHours)")
	_ = fanCmd.MarkFlagRequired("cool")
	_ = fanCmd.MarkFlagRequired("heat")

	vacationCreateCmd.Flags().Float64Var(&coolTemp, "cool", 0, "Cool hold temperature in degrees")
	vacationCreateCmd.Flags().Float64Var(&heatTemp, "heat", 0, "Heat hold temperature in degrees")
	vacationCreateCmd.Flags().StringVar(&vacationStartDate, "start-date", "", "Start date (YYYY-MM-DD)")
	vacationCreateCmd.Flags().StringVar(&vacationStartTime, "start-time", "", "Start time (HH:MM:SS)")
	vacationCreateCmd.Flags().StringVar(&vacationEndDate, "end-date", "", "End date (YYYY-MM-DD)")
	vacationCreateCmd.Flags().StringVar(&vacationEndTime, "end-time", "", "End time (HH:MM:SS)")
	_ = vacationCreateCmd.MarkFlagRequired("cool")
	_ = vacationCreateCmd.MarkFlagRequired("heat")

	resumeCmd.Flags().BoolVar(&resumeAll, "all", false, "Resume all held events, not just the top one")

	vacationCmd.AddCommand(vacationCreateCmd)
	vacationCmd.AddCommand(vacationDeleteCmd)

	rootCmd.AddCommand(authorizeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(holdCmd)
	rootCmd.AddCommand(climateCmd)
	rootCmd.AddCommand(fanCmd)
	rootCmd.AddCommand(vacationCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(humidityCmd)
}

// openStore returns the credential store selected by --credentials, or
// the default file under the user config directory.
func openStore() (config.Store, error) {
	if credentialsPath != "" {
		return config.NewFileStore(credentialsPath), nil
	}
	return config.NewDefaultFileStore()
}

func newClient() (*ecobee.Client, config.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	client, err := ecobee.NewClient(store)
	if err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

// run executes op with the caller-side recovery policy: an expired access
// token is refreshed and the operation retried exactly once; invalidated
// credentials surface as an instruction to re-authorize.
func run(client *ecobee.Client, op func() error) error {
	err := op()
	if ecobee.IsExpiredToken(err) {
		if rerr := client.RefreshTokens(); rerr != nil {
			err = rerr
		} else {
			err = op()
		}
	}
	if ecobee.IsInvalidToken(err) {
		return fmt.Errorf("stored credentials are no longer valid; run 'ecobee-ctl authorize' to pair again: %w", err)
	}
	return err
}

// runUpdate fetches the thermostat registry, checks the selected index,
// and executes one update operation against it.
func runUpdate(op func(c *ecobee.Client) error) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	return run(client, func() error {
		if err := client.Fetch(); err != nil {
			return err
		}
		if thermostatIndex < 0 || thermostatIndex >= len(client.Thermostats()) {
			return fmt.Errorf("thermostat index %d out of range (have %d)", thermostatIndex, len(client.Thermostats()))
		}
		return op(client)
	})
}

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Pair this app with your ecobee account",
	Long: `Run the PIN authorization handshake against the ecobee API.

Requests a PIN, displays it, and waits while you authorize the app under
My Apps on the ecobee consumer portal. Tokens are stored in the
credentials file once the portal authorization completes.`,
	Example: `  # Interactive: request a PIN and wait for portal authorization
  ecobee-ctl authorize

  # Print the PIN and exit; complete later with --exchange
  ecobee-ctl authorize --no-wait
  ecobee-ctl authorize --exchange`,
	RunE: runAuthorize,
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	if exchange {
		if err := client.RequestTokens(); err != nil {
			return err
		}
		fmt.Println(ui.RenderSuccess("Authorized. Tokens stored."))
		return nil
	}

	if err := client.RequestPin(); err != nil {
		return err
	}

	// Persist the authorization code so --exchange works from a fresh
	// process if the user aborts the wait.
	creds := client.Credentials()
	if err := store.Save(&creds); err != nil {
		return err
	}

	if noWait {
		fmt.Println(ui.RenderPinBanner(client.PIN(), urls.ConsumerPortal))
		return nil
	}

	authorized, err := ui.WaitForAuthorization(client.PIN(), urls.ConsumerPortal, func() (ui.PollResult, error) {
		err := client.RequestTokens()
		switch {
		case err == nil:
			return ui.PollAuthorized, nil
		case ecobee.IsInvalidToken(err):
			return ui.PollFailed, fmt.Errorf("PIN expired before it was authorized; run 'ecobee-ctl authorize' again: %w", err)
		case ecobee.IsTransport(err):
			return ui.PollFailed, err
		default:
			// Authorization still pending on the portal
			return ui.PollPending, nil
		}
	})
	if err != nil {
		return err
	}
	if !authorized {
		return fmt.Errorf("authorization not completed")
	}

	fmt.Println(ui.RenderSuccess("Authorized. Tokens stored."))
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered thermostats",
	Long: `Fetch and display all thermostats registered to the account.

The index shown next to each thermostat selects the target of other
commands via --thermostat. Indices are positional and may change between
fetches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		if err := run(client, client.Fetch); err != nil {
			return err
		}

		if len(client.Thermostats()) == 0 {
			fmt.Println("No thermostats registered to this account.")
			return nil
		}

		for i, t := range client.Thermostats() {
			fmt.Println(ui.RenderThermostatCard(ui.ThermostatCard{
				Index:           i,
				Name:            t.Name(),
				Identifier:      t.Identifier(),
				HvacMode:        t.HvacMode(),
				ActualTemp:      t.ActualTemperature(),
				DesiredHeat:     t.DesiredHeat(),
				DesiredCool:     t.DesiredCool(),
				EquipmentStatus: t.EquipmentStatus(),
			}))
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the selected thermostat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			t := c.Thermostat(thermostatIndex)
			fmt.Println(ui.RenderThermostatCard(ui.ThermostatCard{
				Index:           thermostatIndex,
				Name:            t.Name(),
				Identifier:      t.Identifier(),
				HvacMode:        t.HvacMode(),
				ActualTemp:      t.ActualTemperature(),
				DesiredHeat:     t.DesiredHeat(),
				DesiredCool:     t.DesiredCool(),
				EquipmentStatus: t.EquipmentStatus(),
			}))
			return nil
		})
	},
}

var modeCmd = &cobra.Command{
	Use:   "mode <auto|auxHeatOnly|cool|heat|off>",
	Short: "Set the HVAC mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.SetHvacMode(thermostatIndex, args[0])
		})
	},
}

var holdCmd = &cobra.Command{
	Use:   "hold",
	Short: "Set a temperature hold",
	Example: `  # Hold 78/68 until the next scheduled transition
  ecobee-ctl hold --cool 78 --heat 68

  # Hold for four hours
  ecobee-ctl hold --cool 78 --heat 68 --type holdHours --hours 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.SetHoldTemp(thermostatIndex, coolTemp, heatTemp, holdType, holdHours)
		})
	},
}

var climateCmd = &cobra.Command{
	Use:   "climate <away|home|sleep>",
	Short: "Set a climate hold",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.SetClimateHold(thermostatIndex, args[0], holdType)
		})
	},
}

var fanCmd = &cobra.Command{
	Use:   "fan <auto|minontime|on>",
	Short: "Set the fan mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.SetFanMode(thermostatIndex, args[0], coolTemp, heatTemp, holdType)
		})
	},
}

var vacationCmd = &cobra.Command{
	Use:   "vacation",
	Short: "Manage vacation events",
}

var vacationCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a vacation event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.CreateVacation(thermostatIndex, args[0], coolTemp, heatTemp, ecobee.VacationOptions{
				StartDate: vacationStartDate,
				StartTime: vacationStartTime,
				EndDate:   vacationEndDate,
				EndTime:   vacationEndTime,
			})
		})
	},
}

var vacationDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a vacation event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.DeleteVacation(thermostatIndex, args[0])
		})
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the scheduled program",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.ResumeProgram(thermostatIndex, resumeAll)
		})
	},
}

var messageCmd = &cobra.Command{
	Use:   "message <text>",
	Short: "Send a message to the thermostat display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(func(c *ecobee.Client) error {
			return c.SendMessage(thermostatIndex, args[0])
		})
	},
}

var humidityCmd = &cobra.Command{
	Use:   "humidity <target>",
	Short: "Set the target humidity level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var target int
		if _, err := fmt.Sscanf(args[0], "%d", &target); err != nil {
			return fmt.Errorf("invalid humidity target %q", args[0])
		}
		return runUpdate(func(c *ecobee.Client) error {
			return c.SetHumidity(thermostatIndex, target)
		})
	},
}
