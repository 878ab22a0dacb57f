package domain

import "go.trai.ch/zerr"

var (
	// ErrFileUnreadable is returned when the target file cannot be opened or read.
	ErrFileUnreadable = zerr.New("file unreadable")

	// ErrConfigMissing is returned when no configuration exists yet.
	ErrConfigMissing = zerr.New("configuration missing, run 'ppd setup'")

	// ErrProbeWorkerFailed marks a probe worker that crashed, timed out or could not start.
	ErrProbeWorkerFailed = zerr.New("probe worker failed")

	// ErrLaunchFailed is returned when the chosen application could not be started.
	ErrLaunchFailed = zerr.New("failed to launch application")

	// ErrPersistenceFailed is returned when history could not be written after a launch.
	ErrPersistenceFailed = zerr.New("failed to persist choice")

	// ErrNoProgram is returned when a choice carries no usable identity.
	ErrNoProgram = zerr.New("no program chosen")

	// ErrAppNotConfigured is returned when launching an application with no directory.
	ErrAppNotConfigured = zerr.New("application not configured")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigWriteFailed is returned when the configuration file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write configuration")

	// ErrHistoryWriteFailed is returned when the history file cannot be written.
	ErrHistoryWriteFailed = zerr.New("failed to write history")

	// ErrHistoryMarshalFailed is returned when the history map cannot be encoded.
	ErrHistoryMarshalFailed = zerr.New("failed to encode history")

	// ErrJournalOpenFailed is returned when the usage journal cannot be opened or migrated.
	ErrJournalOpenFailed = zerr.New("failed to open usage journal")

	// ErrJournalWriteFailed is returned when an entry cannot be appended to the journal.
	ErrJournalWriteFailed = zerr.New("failed to append to usage journal")

	// ErrJournalReadFailed is returned when the journal cannot be queried.
	ErrJournalReadFailed = zerr.New("failed to read usage journal")

	// ErrExecutableNotFound is returned by setup when no executable exists under a directory or its parents.
	ErrExecutableNotFound = zerr.New("executable not found")

	// ErrShortcutsDirMissing is returned when the program picker has no directory to list.
	ErrShortcutsDirMissing = zerr.New("shortcuts directory not found")
)
