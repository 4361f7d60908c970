package docstore

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
)

// DiagnosticsContextFactory creates the diagnostics context of one logical
// operation. The options object only stores the factory, the pipeline
// invokes it once per request.
type DiagnosticsContextFactory func() *DiagnosticsContext

// DiagnosticsContext collects per-operation diagnostics, it is read by the
// diagnostics pipeline after the operation completes.
type DiagnosticsContext struct {
	activityID string
	startedAt  time.Time
	attributes []attribute.KeyValue
}

func NewDiagnosticsContext(clock clockwork.Clock) *DiagnosticsContext {
	return &DiagnosticsContext{
		activityID: uuid.Must(uuid.NewV7()).String(),
		startedAt:  clock.Now(),
	}
}

// ActivityID identifies the operation across the library and the service logs.
func (d *DiagnosticsContext) ActivityID() string {
	return d.activityID
}

func (d *DiagnosticsContext) StartedAt() time.Time {
	return d.startedAt
}

func (d *DiagnosticsContext) AddAttribute(attrs ...attribute.KeyValue) {
	d.attributes = append(d.attributes, attrs...)
}

func (d *DiagnosticsContext) Attributes() []attribute.KeyValue {
	out := make([]attribute.KeyValue, len(d.attributes))
	copy(out, d.attributes)
	return out
}
