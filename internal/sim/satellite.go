// internal/sim/satellite.go
package sim

import (
	"fmt"
	"log/slog"
	"strings"
)

// Direction is the satellite's facing direction.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// PanelStatus reports whether the solar panels are deployed and powered.
type PanelStatus string

const (
	Active   PanelStatus = "Active"
	Inactive PanelStatus = "Inactive"
)

// dataIncrement is how much data one collection pass gathers while the
// panels are active.
const dataIncrement = 10

// ParseDirection matches s against the four cardinal directions,
// case-insensitively, and returns the canonical value.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range []Direction{North, South, East, West} {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

// ParsePanelStatus matches s against the two panel states, case-insensitively.
func ParsePanelStatus(s string) (PanelStatus, bool) {
	for _, p := range []PanelStatus{Active, Inactive} {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// Satellite holds the full simulated state. Construct one with New at
// session start and pass it to whatever drives it; there is no shared
// global instance.
type Satellite struct {
	orientation   Direction
	panels        PanelStatus
	dataCollected int

	log *slog.Logger
}

// New returns a satellite in its launch configuration: facing North,
// panels stowed, no data collected.
func New(log *slog.Logger) *Satellite {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Satellite{
		orientation: North,
		panels:      Inactive,
		log:         log,
	}
}

func (s *Satellite) Orientation() Direction { return s.orientation }

func (s *Satellite) Panels() PanelStatus { return s.panels }

func (s *Satellite) DataCollected() int { return s.dataCollected }

// StatusLine renders the current state as a single human-readable line.
func (s *Satellite) StatusLine() string {
	return fmt.Sprintf("Orientation: %s | Solar Panels: %s | Data Collected: %d",
		s.orientation, s.panels, s.dataCollected)
}

func (s *Satellite) rotate(direction string) Outcome {
	dir, ok := ParseDirection(direction)
	if !ok {
		s.log.Warn("rotation rejected, unknown direction", "direction", direction)
		return rejected(fmt.Sprintf("unknown direction %q", direction))
	}
	s.orientation = dir
	s.log.Info("satellite rotated", "orientation", dir)
	return applied()
}

func (s *Satellite) activatePanels() Outcome {
	s.panels = Active
	s.log.Info("solar panels activated")
	return applied()
}

func (s *Satellite) deactivatePanels() Outcome {
	s.panels = Inactive
	s.log.Info("solar panels deactivated")
	return applied()
}

// collectData gathers data while the panels are active. A collection
// attempt with the panels inactive resets the counter to zero.
func (s *Satellite) collectData() Outcome {
	if s.panels == Active {
		s.dataCollected += dataIncrement
		s.log.Info("data collected", "total", s.dataCollected)
		return applied()
	}
	s.dataCollected = 0
	s.log.Info("panels inactive, data counter reset", "total", s.dataCollected)
	return applied()
}
