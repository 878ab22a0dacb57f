package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
)

// Run drives the model until the user decides or quits. It returns the
// model's verdict and session error; a nil verdict means nothing was launched.
func Run(m *Model, opts ...tea.ProgramOption) (*Model, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		m.gate.Close()
		return m, zerr.Wrap(err, "interactive surface failed")
	}
	if fm, ok := final.(*Model); ok {
		return fm, nil
	}
	return m, nil
}
