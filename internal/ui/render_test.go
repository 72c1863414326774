package ui

import (
	"strings"
	"testing"
)

func TestRenderThermostatCard(t *testing.T) {
	card := ThermostatCard{
		Index:           0,
		Name:            "Hallway",
		Identifier:      "411100000000",
		HvacMode:        "heat",
		ActualTemp:      68.8,
		DesiredHeat:     68,
		DesiredCool:     78,
		EquipmentStatus: "heatPump",
	}

	out := RenderThermostatCard(card)

	for _, want := range []string{"Hallway", "411100000000", "heat", "68.8", "heatPump", "[0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("card output missing %q", want)
		}
	}
}

func TestRenderThermostatCard_FallsBackToIdentifier(t *testing.T) {
	out := RenderThermostatCard(ThermostatCard{Index: 2, Identifier: "411100000000"})
	if !strings.Contains(out, "[2] 411100000000") {
		t.Error("card title should fall back to the identifier when the name is empty")
	}
}

func TestRenderThermostatCard_IdleHidesEquipment(t *testing.T) {
	out := RenderThermostatCard(ThermostatCard{Index: 0, Name: "Hallway"})
	if strings.Contains(out, "Running:") {
		t.Error("idle thermostats should not show a Running row")
	}
}

func TestRenderPinBanner(t *testing.T) {
	out := RenderPinBanner("ABCD-EFGH", "https://example.com/portal")
	if !strings.Contains(out, "ABCD-EFGH") {
		t.Error("banner should display the PIN")
	}
	if !strings.Contains(out, "https://example.com/portal") {
		t.Error("banner should display the portal URL")
	}
}

func TestRenderSuccessAndError(t *testing.T) {
	if !strings.Contains(RenderSuccess("done"), "done") {
		t.Error("success output missing message")
	}
	if !strings.Contains(RenderError("failed"), "failed") {
		t.Error("error output missing message")
	}
}
