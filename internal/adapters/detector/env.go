// Package detector chooses between the interactive and headless surfaces.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode represents the surface a run is presented on.
type OutputMode int

const (
	// ModeAuto detects the surface from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive surface with the override gate.
	ModeTUI
	// ModeLinear forces the headless surface. No key can reach the gate.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModeTUI only when both stdin and stdout are
// terminals and no CI variable is set. The gate needs keyboard input, so a
// redirected stdin is headless too.
func DetectEnvironment() OutputMode {
	return detect(
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stdout.Fd())),
		os.Getenv("CI"),
	)
}

func detect(stdinTTY, stdoutTTY bool, ci string) OutputMode {
	switch strings.ToLower(ci) {
	case "true", "1":
		return ModeLinear
	}
	if !stdinTTY || !stdoutTTY {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the --output-mode flag to the detected mode.
// Unknown values fall back to detection.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch strings.ToLower(userFlag) {
	case "tui":
		return ModeTUI
	case "linear", "ci", "headless":
		return ModeLinear
	default:
		return autoDetected
	}
}
