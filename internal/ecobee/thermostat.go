package ecobee

import (
	"encoding/json"
	"net/url"
)

// selection is the ecobee addressing mechanism for thermostat requests.
// The include flags are transmitted as the strings "true"/"false" while
// includeNotificationSettings is a bare boolean; both quirks are part of
// the wire contract.
type selection struct {
	SelectionType               string `json:"selectionType"`
	SelectionMatch              string `json:"selectionMatch,omitempty"`
	IncludeRuntime              string `json:"includeRuntime,omitempty"`
	IncludeSensors              string `json:"includeSensors,omitempty"`
	IncludeProgram              string `json:"includeProgram,omitempty"`
	IncludeEquipmentStatus      string `json:"includeEquipmentStatus,omitempty"`
	IncludeEvents               string `json:"includeEvents,omitempty"`
	IncludeWeather              string `json:"includeWeather,omitempty"`
	IncludeSettings             string `json:"includeSettings,omitempty"`
	IncludeNotificationSettings bool   `json:"includeNotificationSettings,omitempty"`
}

// selectionRequest is the query payload of a thermostat GET.
type selectionRequest struct {
	Selection selection `json:"selection"`
}

// Function is a remote procedure invoked on a thermostat through the
// update endpoint (setHold, createVacation, resumeProgram, ...).
type Function struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// updateRequest is the body of a thermostat POST. Thermostat carries a
// writable-property patch, Functions a list of remote procedure calls;
// either may be omitted.
type updateRequest struct {
	Selection  selection      `json:"selection"`
	Thermostat map[string]any `json:"thermostat,omitempty"`
	Functions  []Function     `json:"functions,omitempty"`
}

// Thermostat is one device record as returned by ecobee. Records are kept
// as decoded JSON rather than a fixed struct: the API returns a large and
// versioned object, and callers mostly pass sub-objects through for
// display.
type Thermostat map[string]any

// Identifier returns the stable thermostat identifier used in selections.
func (t Thermostat) Identifier() string {
	id, _ := t["identifier"].(string)
	return id
}

// Name returns the user-assigned thermostat name.
func (t Thermostat) Name() string {
	name, _ := t["name"].(string)
	return name
}

// HvacMode returns the configured HVAC mode (auto, auxHeatOnly, cool,
// heat, off).
func (t Thermostat) HvacMode() string {
	settings, _ := t["settings"].(map[string]any)
	mode, _ := settings["hvacMode"].(string)
	return mode
}

// EquipmentStatus returns the running-equipment list as reported by the
// device, empty when idle.
func (t Thermostat) EquipmentStatus() string {
	status, _ := t["equipmentStatus"].(string)
	return status
}

// ActualTemperature returns the current reading in degrees, descaled
// from the wire's tenths-of-degree units.
func (t Thermostat) ActualTemperature() float64 {
	return t.runtimeTemp("actualTemperature")
}

// DesiredHeat returns the heat setpoint in degrees.
func (t Thermostat) DesiredHeat() float64 {
	return t.runtimeTemp("desiredHeat")
}

// DesiredCool returns the cool setpoint in degrees.
func (t Thermostat) DesiredCool() float64 {
	return t.runtimeTemp("desiredCool")
}

func (t Thermostat) runtimeTemp(field string) float64 {
	rt, _ := t["runtime"].(map[string]any)
	tenths, _ := rt[field].(float64)
	return tenths / 10
}

// thermostatResponse is the payload of a successful thermostat GET.
type thermostatResponse struct {
	ThermostatList []Thermostat `json:"thermostatList"`
}

// Fetch downloads the registered thermostat list and replaces the cached
// registry wholesale. On any failure the previous registry is left
// untouched. Notification settings are requested only when the
// credentials enable them.
func (c *Client) Fetch() error {
	const action = "get thermostats"

	sel := selection{
		SelectionType:          "registered",
		IncludeRuntime:         "true",
		IncludeSensors:         "true",
		IncludeProgram:         "true",
		IncludeEquipmentStatus: "true",
		IncludeEvents:          "true",
		IncludeWeather:         "true",
		IncludeSettings:        "true",
	}
	if c.creds.IncludeNotifications {
		sel.IncludeNotificationSettings = true
	}

	encoded, err := json.Marshal(selectionRequest{Selection: sel})
	if err != nil {
		return newConnectivityError(action, err)
	}
	params := url.Values{}
	params.Set("json", string(encoded))

	payload, err := c.request(requestSpec{
		method:   "GET",
		endpoint: endpointThermostat,
		params:   params,
		action:   action,
	})
	if err != nil {
		return err
	}

	var resp thermostatResponse
	if err := json.Unmarshal(payload, &resp); err != nil || resp.ThermostatList == nil {
		return newAPIError(action, 0, "thermostat response missing thermostatList")
	}

	c.thermostats = resp.ThermostatList
	return nil
}

// Update refetches thermostat data; wrapper for Fetch.
func (c *Client) Update() error {
	return c.Fetch()
}

// Thermostats returns the cached thermostat registry. The slice is
// replaced, never mutated in place, by Fetch.
func (c *Client) Thermostats() []Thermostat {
	return c.thermostats
}

// Thermostat returns the cached thermostat at the given registry index.
// Index validity is the caller's responsibility: an index is only
// meaningful against the Fetch that produced it, and an out-of-range
// index panics.
func (c *Client) Thermostat(index int) Thermostat {
	return c.thermostats[index]
}

// RemoteSensors returns the remote sensor records of the thermostat at
// the given registry index.
func (c *Client) RemoteSensors(index int) []any {
	sensors, _ := c.thermostats[index]["remoteSensors"].([]any)
	return sensors
}

// EquipmentNotifications returns the equipment notification settings of
// the thermostat at the given registry index. Only populated when the
// registry was fetched with notifications enabled.
func (c *Client) EquipmentNotifications(index int) []any {
	settings, _ := c.thermostats[index]["notificationSettings"].(map[string]any)
	equipment, _ := settings["equipment"].([]any)
	return equipment
}

// ExecuteUpdate posts a property patch and/or function calls to the
// thermostat at the given registry index. Invalid-token and expired-token
// verdicts propagate to the caller as typed errors so it can re-authorize
// or refresh-and-retry; unlike Fetch, nothing is absorbed here.
func (c *Client) ExecuteUpdate(index int, action string, props map[string]any, funcs []Function) error {
	body := updateRequest{
		Selection: selection{
			SelectionType:  "thermostats",
			SelectionMatch: c.thermostats[index].Identifier(),
		},
		Thermostat: props,
		Functions:  funcs,
	}

	_, err := c.request(requestSpec{
		method:   "POST",
		endpoint: endpointThermostat,
		body:     body,
		action:   action,
	})
	return err
}
