package domain

import "time"

// JournalEntry records one decision taken for a file.
type JournalEntry struct {
	ID       string
	Time     time.Time
	File     string
	Program  Program
	Tier     Tier
	Auto     bool
	Launched bool
	Error    string
}

// NewJournalEntry builds an entry from a verdict and the launch outcome.
func NewJournalEntry(v *Verdict, launchErr error) JournalEntry {
	e := JournalEntry{
		File:     v.File,
		Program:  v.Program,
		Tier:     v.Tier,
		Auto:     !v.Manual && v.Tier != TierUser,
		Launched: v.Executed && launchErr == nil,
	}
	if launchErr != nil {
		e.Error = launchErr.Error()
	}
	return e
}

// Mode returns "auto" or "manual".
func (e JournalEntry) Mode() string {
	if e.Auto {
		return "auto"
	}
	return "manual"
}
