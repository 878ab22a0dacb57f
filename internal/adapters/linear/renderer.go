// Package linear provides the headless renderer: one line per tier on stderr
// and the verdict on stdout.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/ui/output"
	"go.trai.ch/ppd/internal/ui/style"
)

// Renderer implements ports.Renderer for non-interactive runs.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output

	mu     sync.Mutex
	checks map[string]checkState // spanID -> check
}

type checkState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer. Nil writers mean the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewWithProfile(stderr, output.ColorProfileANSI),
		checks: make(map[string]checkState),
	}
}

// Start is a no-op; the renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop drops checks that never completed.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID, c := range r.checks {
		_, _ = fmt.Fprintf(r.stderr, "%s %s interrupted\n", r.prefix(c.name), style.Warning)
		delete(r.checks, spanID)
	}
	return nil
}

// OnCheckStart prints the tier being run.
func (r *Renderer) OnCheckStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks[spanID] = checkState{name: name, startTime: startTime}
	_, _ = fmt.Fprintf(r.stderr, "%s checking...\n", r.prefix(name))
}

// OnCheckComplete prints the tier result and its duration.
func (r *Renderer) OnCheckComplete(spanID string, endTime time.Time, result string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.checks[spanID]
	if !ok {
		return
	}
	delete(r.checks, spanID)

	duration := endTime.Sub(c.startTime).Round(time.Millisecond)
	switch {
	case err != nil:
		symbol := r.out.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n", r.prefix(c.name), symbol, duration, err)
	case result != "":
		symbol := r.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s %s in %v\n", r.prefix(c.name), symbol, result, duration)
	default:
		symbol := r.out.String(style.Circle).Faint().String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s no match in %v\n", r.prefix(c.name), symbol, duration)
	}
}

// OnVerdict prints the decision on stdout. A manual verdict lists every tier
// and how to choose explicitly.
func (r *Renderer) OnVerdict(v *domain.Verdict, cfg *domain.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := filepath.Base(v.File)
	if v.Executed {
		symbol := r.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stdout, "%s opened %s with %s (%s)\n",
			symbol, name, v.Program.DisplayName(cfg), v.Tier)
		return
	}

	symbol := r.out.String(style.Warning).Foreground(termenv.ANSIYellow).String()
	_, _ = fmt.Fprintf(r.stdout, "%s no automatic decision for %s\n", symbol, name)
	for _, res := range v.Report.Results() {
		_, _ = fmt.Fprintf(r.stdout, "    %-10s %s\n", res.Tier.String()+":", res.Label(cfg))
	}
	_, _ = fmt.Fprintf(r.stdout, "  choose with: ppd --with primary|secondary|<program> %s\n", name)
}

func (r *Renderer) prefix(name string) string {
	return r.out.String(fmt.Sprintf("[%s]", name)).Faint().String()
}
