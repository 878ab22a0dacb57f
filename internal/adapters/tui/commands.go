package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// WaitForGate returns a command that blocks until g resolves.
func WaitForGate(g Gate) tea.Cmd {
	return func() tea.Msg {
		<-g.Done()
		return MsgGateResolved{Resolution: g.Resolution()}
	}
}

// RunProbe returns a command that runs the probe tier off the event loop.
func RunProbe(ctx context.Context, s Session) tea.Cmd {
	return func() tea.Msg {
		return MsgProbeDone{Result: s.Probe(ctx)}
	}
}
