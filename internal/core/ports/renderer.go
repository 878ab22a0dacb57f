package ports

import (
	"context"
	"time"

	"go.trai.ch/ppd/internal/core/domain"
)

// Renderer presents a headless run.
// Tier events arrive through the telemetry bridge; the verdict is reported last.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error
	// Stop flushes any buffered output.
	Stop() error
	// OnCheckStart is called when a tier begins.
	OnCheckStart(spanID, name string, startTime time.Time)
	// OnCheckComplete is called when a tier finishes. result is the serialised
	// identity it produced, empty for Unknown.
	OnCheckComplete(spanID string, endTime time.Time, result string, err error)
	// OnVerdict is called once with the final decision.
	OnVerdict(verdict *domain.Verdict, cfg *domain.Config)
}
