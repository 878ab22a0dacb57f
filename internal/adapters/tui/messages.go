package tui

import (
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/engine/gate"
)

// MsgGateResolved is sent once the override gate resolves.
type MsgGateResolved struct {
	Resolution gate.Resolution
}

// MsgProbeDone carries the live probe result back to the event loop.
type MsgProbeDone struct {
	Result domain.CheckResult
}
