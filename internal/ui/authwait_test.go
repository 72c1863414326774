package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(poll PollFunc) authWaitModel {
	return newAuthWaitModel("ABCD-EFGH", "https://example.com/portal", poll, time.Millisecond)
}

func TestAuthWait_AuthorizedQuits(t *testing.T) {
	m := testModel(func() (PollResult, error) { return PollAuthorized, nil })

	updated, cmd := m.Update(pollDoneMsg{result: PollAuthorized})
	final := updated.(authWaitModel)

	if !final.authorized {
		t.Error("model should record authorization")
	}
	if cmd == nil {
		t.Fatal("authorized poll should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestAuthWait_PendingReschedules(t *testing.T) {
	m := testModel(func() (PollResult, error) { return PollPending, nil })

	updated, cmd := m.Update(pollDoneMsg{result: PollPending})
	final := updated.(authWaitModel)

	if final.authorized || final.err != nil {
		t.Error("pending poll should leave the model waiting")
	}
	if final.attempts != 1 {
		t.Errorf("attempts = %d, want 1", final.attempts)
	}
	if cmd == nil {
		t.Error("pending poll should schedule another attempt")
	}
}

func TestAuthWait_FailureCarriesError(t *testing.T) {
	m := testModel(nil)

	wantErr := fmt.Errorf("pin expired")
	updated, _ := m.Update(pollDoneMsg{result: PollFailed, err: wantErr})
	final := updated.(authWaitModel)

	if final.err != wantErr {
		t.Errorf("err = %v, want %v", final.err, wantErr)
	}
}

func TestAuthWait_AbortKeys(t *testing.T) {
	for _, key := range []string{"ctrl+c", "q", "esc"} {
		m := testModel(nil)

		var msg tea.KeyMsg
		switch key {
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		updated, cmd := m.Update(msg)
		final := updated.(authWaitModel)

		if !final.aborted {
			t.Errorf("key %q should abort the wait", key)
		}
		if cmd == nil {
			t.Errorf("key %q should produce a quit command", key)
		}
	}
}

func TestAuthWait_ViewShowsPin(t *testing.T) {
	m := testModel(nil)

	view := m.View()
	if !strings.Contains(view, "ABCD-EFGH") {
		t.Error("view should display the PIN")
	}
	if !strings.Contains(view, "https://example.com/portal") {
		t.Error("view should display the portal URL")
	}
}

func TestAuthWait_ViewEmptyAfterQuit(t *testing.T) {
	m := testModel(nil)
	m.authorized = true

	if m.View() != "" {
		t.Error("view should be empty once the wait is over")
	}
}
