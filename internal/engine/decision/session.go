package decision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/zerr"
)

// Session is one decision for one file. Local, Finish, Choose and ChooseNew
// must be called from a single goroutine; Probe may run on another.
type Session struct {
	engine *Engine
	file   string
	cfg    *domain.Config
	start  time.Time
	report domain.Report
	auto   bool
}

// File returns the absolute path being decided.
func (s *Session) File() string {
	return s.file
}

// Config returns the configuration the session runs with.
func (s *Session) Config() *domain.Config {
	return s.cfg
}

// Report returns the tier results gathered so far.
func (s *Session) Report() domain.Report {
	return s.report
}

// Auto reports whether the session may still execute without asking.
func (s *Session) Auto() bool {
	return s.auto
}

// Run executes all three tiers on the calling goroutine.
func (s *Session) Run(ctx context.Context, auto bool) (*domain.Verdict, error) {
	v, err := s.Local(ctx, auto)
	if v != nil {
		return v, err
	}
	fv, ferr := s.Finish(ctx, s.Probe(ctx))
	return fv, errors.Join(err, ferr)
}

// Local runs the history and signature tiers. It returns a verdict only when
// a tier executed a program; nil means the probe tier is next. A launch
// failure drops the session to manual mode and is returned with a nil verdict.
func (s *Session) Local(ctx context.Context, auto bool) (*domain.Verdict, error) {
	s.auto = auto
	var launchErr error

	s.report.History = s.checkHistory(ctx)
	if s.auto && s.report.History.Positive() {
		// Already remembered; nothing to write back.
		v, err := s.execute(ctx, s.report.History, false)
		if v.Executed {
			return v, err
		}
		launchErr = err
		s.auto = false
	}

	s.report.Signature = s.checkSignature(ctx)
	if s.report.Signature.Err != nil {
		// An unreadable file never opens automatically; later tiers only report.
		s.auto = false
	}
	if s.auto && s.report.Signature.Positive() {
		v, err := s.execute(ctx, s.report.Signature, true)
		if v.Executed {
			return v, err
		}
		launchErr = err
		s.auto = false
	}

	return nil, launchErr
}

// Probe runs the live open-probe. It blocks and does not touch session state.
func (s *Session) Probe(ctx context.Context) domain.CheckResult {
	if !s.cfg.UseLiveProbe {
		return domain.CheckResult{Tier: domain.TierProbe, Program: domain.Unknown, Skipped: true}
	}

	ctx, span := s.engine.startSpan(ctx, domain.TierProbe, s.file)
	defer span.End()

	p := s.engine.prober.Probe(ctx, s.file, s.cfg)
	span.SetAttribute(ports.ResultAttribute, p.String())
	return domain.CheckResult{Tier: domain.TierProbe, Program: p}
}

// Finish records the probe result. It executes a positive result when the
// session is still automatic; otherwise it returns a manual verdict carrying
// all three results.
func (s *Session) Finish(ctx context.Context, probe domain.CheckResult) (*domain.Verdict, error) {
	probe.Tier = domain.TierProbe
	s.report.Probe = probe
	s.report.ProbeDone = true

	var launchErr error
	if s.auto && probe.Positive() {
		v, err := s.execute(ctx, probe, true)
		if v.Executed {
			return v, err
		}
		launchErr = err
		s.auto = false
	}

	v := s.verdict(domain.Unknown, domain.TierProbe)
	v.Manual = true
	s.record(ctx, v, nil)
	return v, launchErr
}

// Choose launches a program picked on the manual surface and remembers it
// when it differs from the current history entry.
func (s *Session) Choose(ctx context.Context, program domain.Program) (*domain.Verdict, error) {
	if !program.IsKnown() {
		return nil, domain.ErrNoProgram
	}

	v := s.verdict(program, domain.TierUser)
	v.Manual = true
	if err := s.launch(ctx, program); err != nil {
		s.record(ctx, v, err)
		return v, err
	}
	v.Executed = true

	var persistErr error
	if s.engine.HistoryEntry(s.file) != program {
		persistErr = s.remember(program)
	}
	s.record(ctx, v, nil)
	return v, persistErr
}

// ChooseNew remembers a program picked from the shortcuts directory and
// launches it. An empty path means nothing was selected and is a no-op.
func (s *Session) ChooseNew(ctx context.Context, path string) (*domain.Verdict, error) {
	program := domain.Other(path)
	if !program.IsKnown() {
		return nil, nil
	}

	persistErr := s.remember(program)

	v := s.verdict(program, domain.TierUser)
	v.Manual = true
	if err := s.launch(ctx, program); err != nil {
		s.record(ctx, v, err)
		return v, errors.Join(err, persistErr)
	}
	v.Executed = true
	s.record(ctx, v, nil)
	return v, persistErr
}

func (s *Session) checkHistory(ctx context.Context) domain.CheckResult {
	_, span := s.engine.startSpan(ctx, domain.TierHistory, s.file)
	defer span.End()

	p := s.engine.HistoryEntry(s.file)
	span.SetAttribute(ports.ResultAttribute, p.String())
	return domain.CheckResult{Tier: domain.TierHistory, Program: p}
}

func (s *Session) checkSignature(ctx context.Context) domain.CheckResult {
	_, span := s.engine.startSpan(ctx, domain.TierSignature, s.file)
	defer span.End()

	p, err := s.engine.checker.Check(s.file)
	if err != nil {
		span.RecordError(err)
		s.engine.logger.Warn(fmt.Sprintf("signature check failed: %v", err))
		return domain.CheckResult{Tier: domain.TierSignature, Program: domain.Unknown, Err: err}
	}
	span.SetAttribute(ports.ResultAttribute, p.String())
	return domain.CheckResult{Tier: domain.TierSignature, Program: p}
}

// execute launches result and, when write is set, remembers it. The verdict
// reports Executed=false when the launch failed.
func (s *Session) execute(ctx context.Context, result domain.CheckResult, write bool) (*domain.Verdict, error) {
	v := s.verdict(result.Program, result.Tier)
	if err := s.launch(ctx, result.Program); err != nil {
		s.record(ctx, v, err)
		return v, err
	}
	v.Executed = true

	var persistErr error
	if write {
		persistErr = s.remember(result.Program)
	}
	s.record(ctx, v, nil)
	return v, persistErr
}

func (s *Session) launch(ctx context.Context, program domain.Program) error {
	s.engine.logger.Info(fmt.Sprintf("opening %s with %s", s.file, program.DisplayName(s.cfg)))
	if err := s.engine.launcher.Launch(ctx, program, s.file, s.cfg); err != nil {
		return errors.Join(domain.ErrLaunchFailed, zerr.With(err, "program", program.String()))
	}
	return nil
}

// remember writes history. A failure does not undo a launch that already happened.
func (s *Session) remember(program domain.Program) error {
	if err := s.engine.history.Set(s.file, program); err != nil {
		return errors.Join(domain.ErrPersistenceFailed, zerr.With(err, "file", s.file))
	}
	return nil
}

func (s *Session) verdict(program domain.Program, tier domain.Tier) *domain.Verdict {
	return &domain.Verdict{
		File:    s.file,
		Program: program,
		Tier:    tier,
		Report:  s.report,
		Elapsed: time.Since(s.start),
	}
}

// record appends the verdict to the journal. Failures are only logged.
func (s *Session) record(ctx context.Context, v *domain.Verdict, launchErr error) {
	if s.engine.journal == nil {
		return
	}
	if err := s.engine.journal.Append(ctx, domain.NewJournalEntry(v, launchErr)); err != nil {
		s.engine.logger.Warn(fmt.Sprintf("usage journal: %v", err))
	}
}
