package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ppd/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	tierStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(tierColumnWidth)

	pendingStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	failedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)
)

const tierColumnWidth = 11

func programStyle(p lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p).Bold(true)
}
