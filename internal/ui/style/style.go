// Package style holds the colours and icons shared by the terminal surfaces.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ppd/internal/core/domain"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Teal   = lipgloss.Color("#0EA5A4")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// ProgramColor returns the accent used for a program identity.
func ProgramColor(p domain.Program) lipgloss.Color {
	switch p.Kind {
	case domain.KindPrimary:
		return Iris
	case domain.KindSecondary:
		return Teal
	case domain.KindOther:
		return Yellow
	default:
		return Slate
	}
}
