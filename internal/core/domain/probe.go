package domain

// ProbeOutcome classifies a single probe worker.
type ProbeOutcome uint8

const (
	// OutcomeNotMatched means the application ran but could not load the file.
	OutcomeNotMatched ProbeOutcome = iota
	// OutcomeMatched means the application loaded the file.
	OutcomeMatched
	// OutcomeCrashed means the worker failed to start or exited abnormally.
	OutcomeCrashed
	// OutcomeTimedOut means the worker did not report within the probe timeout.
	OutcomeTimedOut
)

// String returns the outcome name.
func (o ProbeOutcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "not matched"
	}
}

// WorkerReport is the single message a probe worker posts on the result queue.
type WorkerReport struct {
	App     Program
	Outcome ProbeOutcome
	Err     error
}

// Positive reports whether the worker contributes its identity.
func (r WorkerReport) Positive() bool {
	return r.Outcome == OutcomeMatched
}

// ProbeIdentityTag returns the line a worker prints when the case loaded.
func ProbeIdentityTag(app Program) string {
	return "ppd-probe:" + app.String()
}
