// internal/session/session_test.go
package session

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/orbitkit/satctl/internal/sim"
)

// runScript feeds newline-separated answers to a fresh session and
// returns the satellite afterwards along with everything written out.
func runScript(t *testing.T, answers ...string) (*sim.Satellite, string) {
	t.Helper()
	sat := sim.New(nil)
	var out bytes.Buffer
	s := New(sat, strings.NewReader(strings.Join(answers, "\n")+"\n"), &out, nil)
	s.Run()
	return sat, out.String()
}

func TestTwoRoundScenario(t *testing.T) {
	// Round 1: rotate east, panels active, continue.
	// Round 2: no rotate, panels inactive, stop.
	sat, out := runScript(t,
		"Yes", "East", "Active", "Yes",
		"No", "Inactive", "No",
	)

	if got := sat.Orientation(); got != sim.East {
		t.Errorf("Orientation() = %q, want %q", got, sim.East)
	}
	if got := sat.Panels(); got != sim.Inactive {
		t.Errorf("Panels() = %q, want %q", got, sim.Inactive)
	}
	if got := sat.DataCollected(); got != 0 {
		t.Errorf("DataCollected() = %d, want 0 after inactive round", got)
	}

	// Round 1 status must reflect the state before round 2 reset it.
	want := "Orientation: East | Solar Panels: Active | Data Collected: 10"
	if !strings.Contains(out, want) {
		t.Errorf("output missing round-1 status %q\noutput:\n%s", want, out)
	}
}

func TestInvalidPanelStatusKeepsRoundAlive(t *testing.T) {
	sat, out := runScript(t,
		"Yes", "North", "Active", "Yes",
		"No", "Maybe", "No",
	)

	// Panels stay Active from round 1, so round 2 still collects.
	if got := sat.Panels(); got != sim.Active {
		t.Errorf("Panels() = %q, want %q (unchanged by invalid input)", got, sim.Active)
	}
	if got := sat.DataCollected(); got != 20 {
		t.Errorf("DataCollected() = %d, want 20", got)
	}
	if !strings.Contains(out, "Invalid input") {
		t.Errorf("output missing invalid-input notice:\n%s", out)
	}
	if !strings.Contains(out, "Data Collected: 20") {
		t.Errorf("round 2 did not print status:\n%s", out)
	}
}

func TestAllNoSessionRunsOneRound(t *testing.T) {
	sat, out := runScript(t, "No", "No", "No")

	if got := sat.Orientation(); got != sim.North {
		t.Errorf("Orientation() = %q, want %q", got, sim.North)
	}
	if got := sat.DataCollected(); got != 0 {
		t.Errorf("DataCollected() = %d, want 0", got)
	}
	// Second answer "No" is not a panel status, third ends the loop; one
	// round means exactly one status line.
	if got := strings.Count(out, "Orientation:"); got != 1 {
		t.Errorf("status printed %d times, want 1\noutput:\n%s", got, out)
	}
	if got := strings.Count(out, "Do you want to continue?"); got != 1 {
		t.Errorf("continue prompt shown %d times, want 1", got)
	}
}

func TestContinueRequiresExactYes(t *testing.T) {
	tests := []struct {
		answer string
		rounds int
	}{
		{"yes", 2},
		{"YES", 2},
		{"no", 1},
		{"", 1},
		{"y", 1},
		{"maybe", 1},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			answers := []string{"No", "Inactive", tt.answer}
			if tt.rounds == 2 {
				answers = append(answers, "No", "Inactive", "No")
			}
			_, out := runScript(t, answers...)
			if got := strings.Count(out, "Orientation:"); got != tt.rounds {
				t.Errorf("ran %d rounds, want %d\noutput:\n%s", got, tt.rounds, out)
			}
		})
	}
}

func TestExhaustedInputEndsSessionGracefully(t *testing.T) {
	sat := sim.New(nil)
	var out bytes.Buffer
	// Stream ends right after the direction answer, mid-round.
	s := New(sat, strings.NewReader("Yes\nEast\n"), &out, nil)
	s.Run()

	if got := sat.Orientation(); got != sim.East {
		t.Errorf("Orientation() = %q, want %q (rotate completed before EOF)", got, sim.East)
	}
	// The round never reached collection or the status report.
	if strings.Contains(out.String(), "Orientation:") {
		t.Errorf("status printed for an aborted round:\n%s", out.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream torn down")
}

func TestUnreadableInputEndsSessionGracefully(t *testing.T) {
	sat := sim.New(nil)
	s := New(sat, failingReader{}, io.Discard, nil)
	// Must return rather than panic or loop.
	s.Run()

	if got := sat.DataCollected(); got != 0 {
		t.Errorf("DataCollected() = %d, want 0", got)
	}
}

func TestAnswersAreTrimmed(t *testing.T) {
	sat, _ := runScript(t, "  Yes  ", " east ", "  ACTIVE ", " no ")
	if got := sat.Orientation(); got != sim.East {
		t.Errorf("Orientation() = %q, want %q", got, sim.East)
	}
	if got := sat.Panels(); got != sim.Active {
		t.Errorf("Panels() = %q, want %q", got, sim.Active)
	}
	if got := sat.DataCollected(); got != 10 {
		t.Errorf("DataCollected() = %d, want 10", got)
	}
}
