package domain

import "time"

// Tier is one stage of the decision pipeline.
type Tier uint8

const (
	// TierHistory looks the file up in the history store.
	TierHistory Tier = iota
	// TierSignature scans the leading bytes of the file.
	TierSignature
	// TierProbe opens the file through both applications.
	TierProbe
	// TierUser is an explicit choice made on the manual surface.
	TierUser
)

// String returns the tier name used in logs, spans and the journal.
func (t Tier) String() string {
	switch t {
	case TierHistory:
		return "history"
	case TierSignature:
		return "signature"
	case TierProbe:
		return "probe"
	case TierUser:
		return "user"
	default:
		return "unknown"
	}
}

// ParseTier decodes a tier name. Unrecognised names map to TierUser.
func ParseTier(s string) Tier {
	switch s {
	case "history":
		return TierHistory
	case "signature":
		return TierSignature
	case "probe":
		return TierProbe
	default:
		return TierUser
	}
}

// CheckResult is the outcome of one tier. A failing tier carries Unknown and
// the error for display; it never aborts the pipeline.
type CheckResult struct {
	Tier    Tier
	Program Program
	Err     error
	Skipped bool
}

// Positive reports whether the tier produced a usable answer.
func (r CheckResult) Positive() bool {
	return r.Err == nil && !r.Skipped && r.Program.IsKnown()
}

// Report holds the results surfaced on the manual path.
type Report struct {
	History   CheckResult
	Signature CheckResult
	Probe     CheckResult
	// ProbeDone is false while the probe tier is still running.
	ProbeDone bool
}

// Results returns the three results in tier order.
func (r Report) Results() []CheckResult {
	return []CheckResult{r.History, r.Signature, r.Probe}
}

// Verdict is the decision taken for a file.
type Verdict struct {
	File    string
	Program Program
	Tier    Tier
	// Executed is true when the program was launched.
	Executed bool
	// Manual is true when the results must be surfaced for a human choice.
	Manual bool
	Report  Report
	Elapsed time.Duration
}

// Label describes the result for the manual surface.
func (r CheckResult) Label(cfg *Config) string {
	switch {
	case r.Skipped:
		return "not checked"
	case r.Err != nil:
		return "failed"
	case r.Program.IsKnown():
		return r.Program.DisplayName(cfg)
	default:
		return "no match"
	}
}
