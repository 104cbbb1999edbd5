// internal/session/session.go
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/orbitkit/satctl/internal/sim"
)

const (
	rotatePrompt    = "Do you want to rotate the satellite? (Yes/No): "
	directionPrompt = "Enter direction (North, South, East, West): "
	panelPrompt     = "Enter solar panel status (Active/Inactive): "
	continuePrompt  = "Do you want to continue? (Yes/No): "
)

// Session drives one satellite through the interactive round protocol.
// It is strictly sequential: one reader, one writer, no background work.
type Session struct {
	sat *sim.Satellite
	in  *bufio.Scanner
	out io.Writer
	log *slog.Logger
}

// New wires a session over the given streams. The satellite is owned by
// the caller; the session only applies operations to it.
func New(sat *sim.Satellite, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		sat: sat,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run loops rounds until the user declines to continue or the input
// stream fails. Input failure is fatal for the session but not for the
// process: it is logged and Run returns normally.
func (s *Session) Run() {
	for {
		if !s.round() {
			return
		}
		answer, ok := s.ask(continuePrompt)
		if !ok {
			s.fatalInput()
			return
		}
		if !strings.EqualFold(answer, "yes") {
			s.log.Info("session ended by user")
			return
		}
	}
}

// round performs one full iteration: optional rotation, panel update,
// unconditional data collection, status report. It returns false if the
// input stream failed mid-round.
func (s *Session) round() bool {
	answer, ok := s.ask(rotatePrompt)
	if !ok {
		s.fatalInput()
		return false
	}
	if strings.EqualFold(answer, "yes") {
		direction, ok := s.ask(directionPrompt)
		if !ok {
			s.fatalInput()
			return false
		}
		// Validation lives in the rotate operation; a rejection has
		// already been logged and leaves orientation unchanged.
		s.sat.Apply(sim.Rotate{Direction: direction})
	}

	status, ok := s.ask(panelPrompt)
	if !ok {
		s.fatalInput()
		return false
	}
	switch {
	case strings.EqualFold(status, string(sim.Active)):
		s.sat.Apply(sim.ActivatePanels{})
	case strings.EqualFold(status, string(sim.Inactive)):
		s.sat.Apply(sim.DeactivatePanels{})
	default:
		fmt.Fprintln(s.out, "Invalid input. Solar panel status unchanged.")
		s.log.Warn("unrecognized panel status", "input", status)
	}

	s.sat.Apply(sim.CollectData{})
	fmt.Fprintln(s.out, s.sat.StatusLine())
	return true
}

// ask prints a prompt and reads one whitespace-trimmed line. ok is false
// when the stream is closed or unreadable.
func (s *Session) ask(prompt string) (answer string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) fatalInput() {
	if err := s.in.Err(); err != nil {
		s.log.Error("input stream failed, ending session", "error", err)
		return
	}
	s.log.Error("input stream closed, ending session")
}
