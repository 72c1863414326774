package ui

import (
	"fmt"
	"strings"
)

// ThermostatCard holds the display fields of one thermostat for the list
// and status commands. Temperatures are in degrees, already descaled from
// the wire units.
type ThermostatCard struct {
	Index           int
	Name            string
	Identifier      string
	HvacMode        string
	ActualTemp      float64
	DesiredHeat     float64
	DesiredCool     float64
	EquipmentStatus string
}

// RenderThermostatCard renders one thermostat as a bordered card.
func RenderThermostatCard(card ThermostatCard) string {
	var b strings.Builder

	title := card.Name
	if title == "" {
		title = card.Identifier
	}
	b.WriteString(TitleStyle.Render(fmt.Sprintf("[%d] %s", card.Index, title)))
	b.WriteString("\n")

	rows := []struct {
		key   string
		value string
	}{
		{"Identifier:", card.Identifier},
		{"Mode:", card.HvacMode},
		{"Temperature:", fmt.Sprintf("%.1f°", card.ActualTemp)},
		{"Heat to:", fmt.Sprintf("%.1f°", card.DesiredHeat)},
		{"Cool to:", fmt.Sprintf("%.1f°", card.DesiredCool)},
	}
	if card.EquipmentStatus != "" {
		rows = append(rows, struct {
			key   string
			value string
		}{"Running:", card.EquipmentStatus})
	}

	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(KeyStyle.Render(row.key))
		b.WriteString(ValueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return CardBorderStyle(GetTerminalWidth()).Render(strings.TrimRight(b.String(), "\n"))
}

// RenderPinBanner renders the PIN and portal instructions for the
// non-interactive authorize path.
func RenderPinBanner(pin, portalURL string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("ECOBEE AUTHORIZATION"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Your PIN: %s\n\n", PinStyle.Render(pin)))
	b.WriteString(HintStyle.Render(fmt.Sprintf("  1. Open %s", portalURL)))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("  2. Go to My Apps, Add Application, enter the PIN and click Authorize"))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("  3. Run 'ecobee-ctl authorize --exchange' to complete the handshake"))

	return BannerBorderStyle(GetTerminalWidth()).Render(b.String())
}

// RenderSuccess renders a green success line.
func RenderSuccess(message string) string {
	return SuccessTitleStyle.Render(fmt.Sprintf("%s %s", SuccessMarker, message))
}

// RenderError renders a red failure line.
func RenderError(message string) string {
	return ErrorTitleStyle.Render(fmt.Sprintf("%s %s", FailureMarker, message))
}
