package docstore

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewDiagnosticsContext(t *testing.T) {
	t.Parallel()
	clock := clockwork.NewFakeClock()
	diagnostics := NewDiagnosticsContext(clock)

	assert.NotEmpty(t, diagnostics.ActivityID())
	assert.Equal(t, clock.Now(), diagnostics.StartedAt())
	assert.Empty(t, diagnostics.Attributes())

	// Each context has an unique activity ID
	other := NewDiagnosticsContext(clock)
	assert.NotEqual(t, diagnostics.ActivityID(), other.ActivityID())
}

func TestDiagnosticsContext_Attributes(t *testing.T) {
	t.Parallel()
	diagnostics := NewDiagnosticsContext(clockwork.NewFakeClock())
	diagnostics.AddAttribute(attribute.String("db.operation", "read"))
	diagnostics.AddAttribute(attribute.Int("http.status_code", 200))

	attrs := diagnostics.Attributes()
	assert.Len(t, attrs, 2)

	// The returned slice is a copy
	attrs[0] = attribute.String("db.operation", "modified")
	assert.Equal(t, attribute.String("db.operation", "read"), diagnostics.Attributes()[0])
}
