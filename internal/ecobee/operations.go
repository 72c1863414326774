package ecobee

import "strconv"

// Operation wrappers. Each builds the payload for one thermostat update
// and delegates to ExecuteUpdate; the registry index contract of
// ExecuteUpdate applies throughout.

const (
	// DefaultHoldType resumes the hold at the next scheduled transition
	DefaultHoldType = "nextTransition"

	// HoldTypeHours holds for a fixed number of hours
	HoldTypeHours = "holdHours"

	// maxMessageLength is the vendor limit on message text; longer
	// messages are truncated before transmission
	maxMessageLength = 500
)

// scaleTemp converts degrees to the tenths-of-degree integer units the
// API requires on the wire.
func scaleTemp(temp float64) int {
	return int(temp * 10)
}

// SetHvacMode sets the HVAC mode (auto, auxHeatOnly, cool, heat, off).
func (c *Client) SetHvacMode(index int, hvacMode string) error {
	return c.ExecuteUpdate(index, "set HVAC mode",
		map[string]any{"settings": map[string]any{"hvacMode": hvacMode}}, nil)
}

// SetFanMinOnTime sets the minimum time, in minutes, to run the fan each
// hour (1 to 60).
func (c *Client) SetFanMinOnTime(index int, fanMinOnTime int) error {
	return c.ExecuteUpdate(index, "set fan minimum on time",
		map[string]any{"settings": map[string]any{"fanMinOnTime": fanMinOnTime}}, nil)
}

// SetFanMode sets the fan mode (auto, minontime, on) via a temperature
// hold carrying the fan setting.
func (c *Client) SetFanMode(index int, fanMode string, coolTemp, heatTemp float64, holdType string) error {
	return c.ExecuteUpdate(index, "set fan mode", nil, []Function{{
		Type: "setHold",
		Params: map[string]any{
			"holdType":     holdType,
			"coolHoldTemp": scaleTemp(coolTemp),
			"heatHoldTemp": scaleTemp(heatTemp),
			"fan":          fanMode,
		},
	}})
}

// SetHoldTemp sets a temperature hold. holdHours is only transmitted when
// holdType is HoldTypeHours.
func (c *Client) SetHoldTemp(index int, coolTemp, heatTemp float64, holdType string, holdHours string) error {
	params := map[string]any{
		"holdType":     holdType,
		"coolHoldTemp": scaleTemp(coolTemp),
		"heatHoldTemp": scaleTemp(heatTemp),
	}
	if holdType == HoldTypeHours {
		params["holdHours"] = holdHours
	}
	return c.ExecuteUpdate(index, "set hold temp", nil, []Function{{
		Type:   "setHold",
		Params: params,
	}})
}

// SetClimateHold sets a climate hold (away, home, sleep).
func (c *Client) SetClimateHold(index int, climate string, holdType string) error {
	return c.ExecuteUpdate(index, "set climate hold", nil, []Function{{
		Type: "setHold",
		Params: map[string]any{
			"holdType":       holdType,
			"holdClimateRef": climate,
		},
	}})
}

// VacationOptions carries the optional fields of CreateVacation. Zero
// values are transmitted as-is; the API applies its own defaults to empty
// dates and times.
type VacationOptions struct {
	StartDate    string
	StartTime    string
	EndDate      string
	EndTime      string
	FanMode      string
	FanMinOnTime string
}

// CreateVacation creates a named vacation event on the thermostat.
func (c *Client) CreateVacation(index int, name string, coolTemp, heatTemp float64, opts VacationOptions) error {
	if opts.FanMode == "" {
		opts.FanMode = "auto"
	}
	if opts.FanMinOnTime == "" {
		opts.FanMinOnTime = "0"
	}
	return c.ExecuteUpdate(index, "create a vacation", nil, []Function{{
		Type: "createVacation",
		Params: map[string]any{
			"name":            name,
			"coolHoldTemp":    scaleTemp(coolTemp),
			"heatHoldTemp":    scaleTemp(heatTemp),
			"startDate":       opts.StartDate,
			"startTime":       opts.StartTime,
			"endDate":         opts.EndDate,
			"endTime":         opts.EndTime,
			"fan_mode":        opts.FanMode,
			"fan_min_on_time": opts.FanMinOnTime,
		},
	}})
}

// DeleteVacation deletes a vacation event by name.
func (c *Client) DeleteVacation(index int, name string) error {
	return c.ExecuteUpdate(index, "delete a vacation", nil, []Function{{
		Type:   "deleteVacation",
		Params: map[string]any{"name": name},
	}})
}

// ResumeProgram resumes the currently scheduled program. With resumeAll
// set, all held events are resumed rather than just the top one.
func (c *Client) ResumeProgram(index int, resumeAll bool) error {
	return c.ExecuteUpdate(index, "resume program", nil, []Function{{
		Type:   "resumeProgram",
		Params: map[string]any{"resumeAll": resumeAll},
	}})
}

// SendMessage sends a text message to the thermostat display. Only the
// first 500 characters are transmitted.
func (c *Client) SendMessage(index int, message string) error {
	if runes := []rune(message); len(runes) > maxMessageLength {
		message = string(runes[:maxMessageLength])
	}
	return c.ExecuteUpdate(index, "send message", nil, []Function{{
		Type:   "sendMessage",
		Params: map[string]any{"text": message},
	}})
}

// SetHumidity sets the target humidity level.
func (c *Client) SetHumidity(index int, humidity int) error {
	return c.ExecuteUpdate(index, "set humidity level",
		map[string]any{"settings": map[string]any{"humidity": strconv.Itoa(humidity)}}, nil)
}

// SetMicMode enables or disables the Alexa microphone (ecobee4 only).
func (c *Client) SetMicMode(index int, micEnabled bool) error {
	return c.ExecuteUpdate(index, "set mic mode",
		map[string]any{"audio": map[string]any{"microphoneEnabled": micEnabled}}, nil)
}

// SetOccupancyModes enables or disables Smart Home/Away and Follow Me.
// A nil flag leaves the corresponding setting unchanged on the device by
// transmitting an explicit null.
func (c *Client) SetOccupancyModes(index int, autoAway, followMe *bool) error {
	return c.ExecuteUpdate(index, "set occupancy modes",
		map[string]any{"settings": map[string]any{
			"autoAway":        autoAway,
			"followMeComfort": followMe,
		}}, nil)
}

// SetDstMode enables or disables daylight savings time handling.
func (c *Client) SetDstMode(index int, enableDst bool) error {
	return c.ExecuteUpdate(index, "set dst mode",
		map[string]any{"location": map[string]any{"isDaylightSaving": enableDst}}, nil)
}
