package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/ui/style"
)

// maxPickerRows bounds the picker list height.
const maxPickerRows = 10

// View renders the model.
func (m *Model) View() string {
	if m.phase == PhaseDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ppd"))
	b.WriteString(" ")
	b.WriteString(filepath.Base(m.session.File()))
	b.WriteString("\n\n")

	switch m.phase {
	case PhaseGate:
		b.WriteString(m.spinner.View())
		b.WriteString(" deciding... ")
		b.WriteString(hintStyle.Render(m.overrideHint()))
		b.WriteString("\n")
	case PhaseProbing, PhaseChoose:
		m.renderResults(&b)
		if m.phase == PhaseChoose || !m.session.Auto() {
			b.WriteString("\n")
			m.renderChoices(&b)
		}
	case PhaseOther:
		m.renderResults(&b)
		b.WriteString("\n")
		m.renderOther(&b)
	case PhasePicker:
		m.renderPicker(&b)
	case PhaseDone:
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(style.Cross + " " + m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) overrideHint() string {
	if key := m.session.Config().OverrideKey; key != "" {
		return fmt.Sprintf("press %s or a ctrl chord to choose", key)
	}
	return "press a ctrl chord to choose"
}

func (m *Model) renderResults(b *strings.Builder) {
	report := m.session.Report()
	cfg := m.session.Config()

	for _, res := range report.Results() {
		b.WriteString(tierStyle.Render(res.Tier.String()))
		switch {
		case res.Tier == domain.TierProbe && !report.ProbeDone:
			b.WriteString(m.spinner.View())
			b.WriteString(pendingStyle.Render(" running"))
		case res.Err != nil:
			b.WriteString(failedStyle.Render(style.Cross + " " + res.Label(cfg)))
		case res.Program.IsKnown():
			b.WriteString(programStyle(style.ProgramColor(res.Program)).Render(style.Dot + " " + res.Label(cfg)))
		default:
			b.WriteString(pendingStyle.Render(style.Circle + " " + res.Label(cfg)))
		}
		b.WriteString("\n")
	}
}

func (m *Model) renderChoices(b *strings.Builder) {
	cfg := m.session.Config()
	choices := []struct{ key, label string }{
		{"1", domain.Primary.DisplayName(cfg)},
		{"2", domain.Secondary.DisplayName(cfg)},
		{"3", "other..."},
		{"q", "quit"},
	}
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = keyStyle.Render(c.key) + " " + c.label
	}
	b.WriteString(strings.Join(parts, "   "))
	b.WriteString("\n")
}

func (m *Model) renderOther(b *strings.Builder) {
	other := m.rememberedOther()
	b.WriteString(keyStyle.Render("1"))
	b.WriteString(" open with " + other.DisplayName(m.session.Config()))
	b.WriteString("   ")
	b.WriteString(keyStyle.Render("2"))
	b.WriteString(" choose another program...")
	b.WriteString("   ")
	b.WriteString(hintStyle.Render("esc back"))
	b.WriteString("\n")
}

func (m *Model) renderPicker(b *strings.Builder) {
	if m.picker != nil {
		b.WriteString(hintStyle.Render("programs in " + m.picker.Dir()))
		b.WriteString("\n")
	}
	b.WriteString(m.query.View())
	b.WriteString("\n")

	if len(m.candidates) == 0 {
		b.WriteString(pendingStyle.Render("  no matching programs"))
		b.WriteString("\n")
		return
	}

	start := 0
	if m.selected >= maxPickerRows {
		start = m.selected - maxPickerRows + 1
	}
	end := min(start+maxPickerRows, len(m.candidates))
	for i := start; i < end; i++ {
		name := filepath.Base(m.candidates[i])
		if i == m.selected {
			b.WriteString(selectedStyle.Render(style.Arrow + " " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter open   esc back"))
	b.WriteString("\n")
}
