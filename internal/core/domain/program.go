package domain

import (
	"path/filepath"
	"strings"
)

// ProgramKind identifies which candidate a Program refers to.
type ProgramKind uint8

const (
	// KindUnknown means no check produced a usable answer.
	KindUnknown ProgramKind = iota
	// KindPrimary is the primary application (GE PSLF).
	KindPrimary
	// KindSecondary is the secondary application (PTI PSSE).
	KindSecondary
	// KindOther is an arbitrary external program chosen by the user.
	KindOther
)

// Serialised tags used in the history file.
const (
	TagPrimary   = "primary"
	TagSecondary = "secondary"

	legacyTagPrimary   = "pslf"
	legacyTagSecondary = "psse"
)

// Program is the identity of the application that should open a file.
// Command is only set for KindOther.
type Program struct {
	Kind    ProgramKind
	Command string
}

// Well-known identities.
var (
	Unknown   = Program{Kind: KindUnknown}
	Primary   = Program{Kind: KindPrimary}
	Secondary = Program{Kind: KindSecondary}
)

// Other returns an identity for an arbitrary program invocation.
// An empty command yields Unknown, as does a bare tag name, which would be
// read back from history as one of the candidates.
func Other(command string) Program {
	command = strings.TrimSpace(command)
	if command == "" || isTag(command) {
		return Unknown
	}
	return Program{Kind: KindOther, Command: command}
}

func isTag(s string) bool {
	switch strings.ToLower(s) {
	case TagPrimary, TagSecondary, legacyTagPrimary, legacyTagSecondary:
		return true
	default:
		return false
	}
}

// ParseProgram decodes a serialised history value.
// The tags written by earlier releases ("pslf", "psse") are accepted.
func ParseProgram(s string) Program {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return Unknown
	case TagPrimary, legacyTagPrimary:
		return Primary
	case TagSecondary, legacyTagSecondary:
		return Secondary
	default:
		return Other(s)
	}
}

// String returns the serialised form of the identity.
func (p Program) String() string {
	switch p.Kind {
	case KindPrimary:
		return TagPrimary
	case KindSecondary:
		return TagSecondary
	case KindOther:
		return p.Command
	default:
		return ""
	}
}

// IsKnown reports whether the identity is a usable answer.
func (p Program) IsKnown() bool {
	return p.Kind != KindUnknown
}

// DisplayName returns a short human-readable label.
func (p Program) DisplayName(cfg *Config) string {
	switch p.Kind {
	case KindPrimary:
		if cfg != nil {
			return cfg.Primary.DisplayName(DefaultPrimaryName)
		}
		return DefaultPrimaryName
	case KindSecondary:
		if cfg != nil {
			return cfg.Secondary.DisplayName(DefaultSecondaryName)
		}
		return DefaultSecondaryName
	case KindOther:
		return commandStem(p.Command)
	default:
		return "unknown"
	}
}

// commandStem strips directories and the extension from a command path.
// Both separators are honoured since history files move between platforms.
func commandStem(command string) string {
	base := command
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return base
}
