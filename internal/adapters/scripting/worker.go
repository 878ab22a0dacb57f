package scripting

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/zerr"
)

// pipeGrace bounds how long output pipes may stay open after the
// interpreter is killed, e.g. held by a grandchild.
const pipeGrace = 2 * time.Second

// Worker is one interpreter process probing one application.
type Worker struct {
	app         domain.Program
	interpreter string
	file        string
	dir         string
	script      []byte
	env         []string
	logger      ports.Logger
}

// Run executes the script, feeding the script on stdin and every stdout line
// to onLine. It returns the interpreter's exit error. Cancelling ctx kills the
// interpreter and its children.
func (w *Worker) Run(ctx context.Context, onLine func(line string)) error {
	//nolint:gosec // G204: interpreter comes from configuration
	cmd := exec.CommandContext(ctx, w.interpreter, "-", w.file)
	cmd.Dir = w.dir
	cmd.Env = w.env
	cmd.Stdin = bytes.NewReader(w.script)
	cmd.WaitDelay = pipeGrace
	killTree(cmd)

	stdout := &lineWriter{onLine: onLine}
	stderr := &lineWriter{onLine: w.forward}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start interpreter"), "interpreter", w.interpreter)
	}

	err := cmd.Wait()
	stdout.Flush()
	stderr.Flush()
	return err
}

func (w *Worker) forward(line string) {
	if w.logger == nil || strings.TrimSpace(line) == "" {
		return
	}
	w.logger.Warn(fmt.Sprintf("probe %s: %s", w.app, line))
}

// lineWriter splits written bytes into lines. exec copies each stream from a
// single goroutine, so no locking is needed.
type lineWriter struct {
	onLine func(string)
	buf    []byte
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.buf = append(lw.buf, p...)
	for {
		i := bytes.IndexByte(lw.buf, '\n')
		if i < 0 {
			break
		}
		lw.onLine(strings.TrimRight(string(lw.buf[:i]), "\r"))
		lw.buf = lw.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits a trailing line without newline.
func (lw *lineWriter) Flush() {
	if len(lw.buf) > 0 {
		lw.onLine(strings.TrimRight(string(lw.buf), "\r"))
		lw.buf = nil
	}
}
