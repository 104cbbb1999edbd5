// cmd/satctl/main.go
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/orbitkit/satctl/internal/logging"
	"github.com/orbitkit/satctl/internal/session"
	"github.com/orbitkit/satctl/internal/sim"
	"github.com/orbitkit/satctl/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Build-time variables injected via:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=abc1234 -X main.buildDate=2025-01-01"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// directionExplanations map - specific to explainCmd in this package
var directionExplanations = map[string]string{
	"NORTH": "North:\n  The default orientation after launch. The satellite faces North until the first accepted rotation.",
	"SOUTH": "South:\n  Opposite of the launch orientation. Reached by a single rotate command; there are no intermediate headings.",
	"EAST":  "East:\n  One of the four cardinal orientations the attitude model supports. Direction input is case-insensitive.",
	"WEST":  "West:\n  One of the four cardinal orientations the attitude model supports. Direction input is case-insensitive.",
}

var panelExplanations = map[string]string{
	"ACTIVE":   "Active:\n  Solar panels are deployed and powered. Each data-collection pass while Active adds 10 units to the accumulated data counter.",
	"INACTIVE": "Inactive:\n  Solar panels are stowed and unpowered. This is the launch state. A data-collection pass while Inactive resets the accumulated data counter to 0.",
}

var rootCmd = &cobra.Command{
	Use:   "satctl",
	Short: "Satctl is an interactive simulator for a single satellite.",
	Long: `Satctl simulates one satellite's orientation, solar-panel state and
accumulated data. Run it with no arguments (or with 'simulate') to start an
interactive session: each round optionally rotates the satellite, updates
the panel status, attempts a data-collection pass and reports the full
state. Nothing is persisted between runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		runLineSession()
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an interactive simulation session",
	Long: `Runs the interactive simulation loop on stdin/stdout. With --tui the
session is driven by keybindings in a full-screen terminal UI instead of
the line prompts; that mode requires a terminal on stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useTUI, _ := cmd.Flags().GetBool("tui")
		if !useTUI {
			runLineSession()
			return nil
		}
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			cmd.SilenceUsage = true
			return fmt.Errorf("--tui requires a terminal on stdin")
		}
		logger := logging.NewFromEnv()
		sat := sim.New(logger)
		p := tea.NewProgram(tui.NewSimModel(sat), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [category] [term]",
	Short: "Explain a simulator term or concept.",
	Long: `Provides a definition for simulator terms. Supported categories are
'direction' (North, South, East, West) and 'panels' (Active, Inactive).
Examples:
  satctl explain direction North
  satctl explain panels Active`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strings.ToLower(args[0])
		lookup := strings.ToUpper(args[1])

		var explanations map[string]string
		switch category {
		case "direction":
			explanations = directionExplanations
		case "panels":
			explanations = panelExplanations
		default:
			cmd.SilenceUsage = true
			return fmt.Errorf("unknown category for explanation: '%s'. Supported categories are 'direction' and 'panels'", category)
		}

		if explanation, found := explanations[lookup]; found {
			fmt.Println(explanation)
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: Unknown %s term: %s\n", category, args[1])
		fmt.Fprintln(os.Stderr, "Supported terms are:")
		var supported []string
		for k := range explanations {
			supported = append(supported, k)
		}
		sort.Strings(supported)
		for _, t := range supported {
			fmt.Fprintf(os.Stderr, "  - %s\n", t)
		}
		cmd.SilenceUsage = true
		return fmt.Errorf("explanation not found for %s term '%s'", category, args[1])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print satctl version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("satctl %s (commit %s, built %s)\n", version, commit, buildDate)
	},
}

// runLineSession starts a fresh satellite and drives it through the
// prompt-per-round protocol. Fatal input errors are handled inside the
// session, so this path always exits 0.
func runLineSession() {
	logger := logging.NewFromEnv()
	sat := sim.New(logger)
	s := session.New(sat, os.Stdin, os.Stdout, logger)
	s.Run()
}

func init() {
	simulateCmd.Flags().Bool("tui", false, "drive the session with keybindings in a full-screen terminal UI")

	rootCmd.AddCommand(simulateCmd, explainCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
