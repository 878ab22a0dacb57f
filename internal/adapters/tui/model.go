// Package tui provides the interactive surface: the override gate, the three
// tier results and the manual choice.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/ppd/internal/engine/gate"
)

// Session is the part of a decision session the surface drives.
type Session interface {
	File() string
	Config() *domain.Config
	Report() domain.Report
	Auto() bool
	Local(ctx context.Context, auto bool) (*domain.Verdict, error)
	Probe(ctx context.Context) domain.CheckResult
	Finish(ctx context.Context, probe domain.CheckResult) (*domain.Verdict, error)
	Choose(ctx context.Context, program domain.Program) (*domain.Verdict, error)
	ChooseNew(ctx context.Context, path string) (*domain.Verdict, error)
}

// Gate is the override gate as seen by the surface.
type Gate interface {
	Done() <-chan struct{}
	Resolution() gate.Resolution
	Override() bool
	Close()
}

// queryMargin leaves room for the prompt and cursor.
const queryMargin = 4

// Phase is the stage the surface is in.
type Phase int

const (
	// PhaseGate waits for the override gate.
	PhaseGate Phase = iota
	// PhaseProbing waits for the live probe.
	PhaseProbing
	// PhaseChoose shows the manual choices.
	PhaseChoose
	// PhaseOther offers the remembered other program or the picker.
	PhaseOther
	// PhasePicker filters the shortcuts directory.
	PhasePicker
	// PhaseDone means the surface is quitting.
	PhaseDone
)

// Model is the Bubble Tea model for one file.
type Model struct {
	ctx     context.Context //nolint:containedctx // tiers run inside Update
	session Session
	gate    Gate
	picker  ports.ProgramPicker

	phase   Phase
	spinner spinner.Model
	query   textinput.Model

	candidates []string
	selected   int

	verdict *domain.Verdict
	err     error
}

// NewModel creates a model. picker may be nil when no shortcuts directory
// exists; the "choose another program" entry then reports the error.
func NewModel(ctx context.Context, s Session, g Gate, picker ports.ProgramPicker) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	q := textinput.New()
	q.Placeholder = "filter programs"
	q.Prompt = "› "
	q.CharLimit = 128

	return &Model{
		ctx:     ctx,
		session: s,
		gate:    g,
		picker:  picker,
		phase:   PhaseGate,
		spinner: sp,
		query:   q,
	}
}

// Init starts the spinner and waits for the gate.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, WaitForGate(m.gate))
}

// Phase returns the current phase.
func (m *Model) Phase() Phase {
	return m.phase
}

// Verdict returns the final verdict, nil when the user quit.
func (m *Model) Verdict() *domain.Verdict {
	return m.verdict
}

// Err returns the last error reported by the session.
func (m *Model) Err() error {
	return m.err
}

// Candidates returns the picker entries currently listed.
func (m *Model) Candidates() []string {
	return m.candidates
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.query.Width = max(msg.Width-queryMargin, 0)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgGateResolved:
		return m.handleGate(msg)
	case MsgProbeDone:
		return m.handleProbe(msg)
	}
	return m, nil
}

func (m *Model) handleGate(msg MsgGateResolved) (tea.Model, tea.Cmd) {
	if m.phase != PhaseGate {
		return m, nil
	}
	if msg.Resolution == gate.Cancelled {
		return m.quit()
	}

	v, err := m.session.Local(m.ctx, msg.Resolution.AutoExecute())
	m.err = err
	if v != nil {
		m.verdict = v
		return m.quit()
	}

	m.phase = PhaseProbing
	return m, RunProbe(m.ctx, m.session)
}

func (m *Model) handleProbe(msg MsgProbeDone) (tea.Model, tea.Cmd) {
	// A choice made while probing wins; the late result is dropped.
	if m.phase != PhaseProbing {
		return m, nil
	}

	v, err := m.session.Finish(m.ctx, msg.Result)
	if err != nil {
		m.err = err
	}
	if v != nil && v.Executed {
		m.verdict = v
		return m.quit()
	}
	m.phase = PhaseChoose
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	switch m.phase {
	case PhaseGate:
		if gate.QualifyingKey(key, m.session.Config().OverrideKey) {
			m.gate.Override()
			return m, nil
		}
		if key == "q" || key == "esc" {
			return m.quit()
		}
	case PhaseProbing:
		// Choices open early once the session can no longer auto-execute.
		if m.session.Auto() {
			if key == "q" || key == "esc" {
				return m.quit()
			}
			return m, nil
		}
		return m.handleChooseKey(key)
	case PhaseChoose:
		return m.handleChooseKey(key)
	case PhaseOther:
		return m.handleOtherKey(key)
	case PhasePicker:
		return m.handlePickerKey(msg)
	case PhaseDone:
	}
	return m, nil
}

func (m *Model) handleChooseKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "p":
		return m.choose(domain.Primary)
	case "2", "s":
		return m.choose(domain.Secondary)
	case "3", "o":
		if m.rememberedOther().IsKnown() {
			m.phase = PhaseOther
			return m, nil
		}
		return m.openPicker()
	case "q", "esc":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleOtherKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "enter":
		return m.choose(m.rememberedOther())
	case "2":
		return m.openPicker()
	case "esc", "backspace":
		m.phase = m.menuPhase()
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.query.Blur()
		m.phase = m.menuPhase()
		return m, nil
	case "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "ctrl+n", "tab":
		if m.selected < len(m.candidates)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		if len(m.candidates) == 0 {
			return m, nil
		}
		return m.chooseNew(m.candidates[m.selected])
	}

	var cmd tea.Cmd
	before := m.query.Value()
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != before {
		m.refreshCandidates()
	}
	return m, cmd
}

// menuPhase is where esc returns to from a submenu.
func (m *Model) menuPhase() Phase {
	if m.session.Report().ProbeDone {
		return PhaseChoose
	}
	return PhaseProbing
}

// rememberedOther returns the external program held in history, if any.
func (m *Model) rememberedOther() domain.Program {
	if p := m.session.Report().History.Program; p.Kind == domain.KindOther {
		return p
	}
	return domain.Unknown
}

func (m *Model) openPicker() (tea.Model, tea.Cmd) {
	if m.picker == nil {
		m.err = domain.ErrShortcutsDirMissing
		return m, nil
	}
	m.err = nil
	m.phase = PhasePicker
	m.query.SetValue("")
	m.refreshCandidates()
	return m, m.query.Focus()
}

func (m *Model) refreshCandidates() {
	m.selected = 0
	candidates, err := m.picker.Candidates(m.query.Value())
	if err != nil {
		m.err = err
		m.candidates = nil
		return
	}
	m.err = nil
	m.candidates = candidates
}

func (m *Model) choose(p domain.Program) (tea.Model, tea.Cmd) {
	v, err := m.session.Choose(m.ctx, p)
	return m.chosen(v, err)
}

func (m *Model) chooseNew(path string) (tea.Model, tea.Cmd) {
	v, err := m.session.ChooseNew(m.ctx, path)
	return m.chosen(v, err)
}

// chosen quits once a program was launched. A failed launch stays on the
// menu with the error shown so another choice can be made.
func (m *Model) chosen(v *domain.Verdict, err error) (tea.Model, tea.Cmd) {
	m.err = err
	if v == nil || !v.Executed {
		return m, nil
	}
	m.verdict = v
	return m.quit()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.gate.Close()
	m.phase = PhaseDone
	return m, tea.Quit
}
