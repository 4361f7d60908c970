package docstore

import (
	"net/http"
	"testing"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/stretchr/testify/assert"

	"github.com/keboola/go-docstore/pkg/request"
)

func TestRequestOptions_Populate_Empty(t *testing.T) {
	t.Parallel()
	r := request.New(http.MethodGet, "/dbs/db1/colls/c1/docs/d1")

	options := &RequestOptions{}
	options.Populate(r)

	assert.Equal(t, 0, r.Headers().Len())
	assert.Equal(t, 0, r.ExtensionPropertiesLen())
}

func TestRequestOptions_Populate_ETags(t *testing.T) {
	t.Parallel()
	r := request.New(http.MethodPut, "/dbs/db1/colls/c1/docs/d1")

	options := &RequestOptions{}
	options.SetIfMatchETag(`"00000000-0000-0000-0000-000000000abc"`)
	options.SetIfNoneMatchETag(`"*"`)
	options.Populate(r)

	value, found := r.Headers().Get(request.HeaderIfMatch)
	assert.True(t, found)
	assert.Equal(t, `"00000000-0000-0000-0000-000000000abc"`, value)

	value, found = r.Headers().Get(request.HeaderIfNoneMatch)
	assert.True(t, found)
	assert.Equal(t, `"*"`, value)
}

func TestRequestOptions_Populate_CustomHeaders(t *testing.T) {
	t.Parallel()
	r := request.New(http.MethodPost, "/dbs/db1/colls/c1/docs")

	headers := orderedmap.New()
	headers.Set("X-Custom-A", "value-a")
	headers.Set("x-custom-b", "value-b")

	options := &RequestOptions{}
	options.SetCustomHeaders(headers)
	options.Populate(r)

	// Entries are added verbatim, in the map order
	assert.Equal(t, []request.Header{
		{Name: "X-Custom-A", Value: "value-a"},
		{Name: "x-custom-b", Value: "value-b"},
	}, r.Headers().All())
}

func TestRequestOptions_Populate_Twice_DuplicatesHeaders(t *testing.T) {
	t.Parallel()
	r := request.New(http.MethodPost, "/dbs/db1/colls/c1/docs")

	options := &RequestOptions{}
	options.AddCustomHeader("X-Custom", "value")
	options.SetIfMatchETag(`"etag"`)

	// The header collection is additive, a second Populate call duplicates
	// the entries. Documented behavior, one call per request lifecycle.
	options.Populate(r)
	options.Populate(r)

	assert.Equal(t, []string{"value", "value"}, r.Headers().Values("X-Custom"))
	assert.Equal(t, []string{`"etag"`, `"etag"`}, r.Headers().Values(request.HeaderIfMatch))
}

func TestRequestOptions_Populate_ExtensionPropertiesOverwrite(t *testing.T) {
	t.Parallel()
	r := request.New(http.MethodGet, "/dbs/db1/colls/c1/docs/d1")
	r.SetExtensionProperty("shared", "request-value")
	r.SetExtensionProperty("other", 123)

	options := &RequestOptions{}
	options.Extensions().SetCustom("shared", "options-value")
	options.Extensions().SetResourceURI("colls/c1/docs/d1")
	options.Populate(r)

	// Last writer wins, the options overwrite the request
	value, found := r.ExtensionProperty("shared")
	assert.True(t, found)
	assert.Equal(t, "options-value", value)

	value, found = r.ExtensionProperty(request.ExtensionKeyResourceURI)
	assert.True(t, found)
	assert.Equal(t, "colls/c1/docs/d1", value)

	// Untouched keys are kept
	value, found = r.ExtensionProperty("other")
	assert.True(t, found)
	assert.Equal(t, 123, value)
}

func TestRequestOptions_Populate_DoesNotMutateOptions(t *testing.T) {
	t.Parallel()
	options := &RequestOptions{}
	options.SetIfMatchETag(`"etag"`)
	options.AddCustomHeader("X-Custom", "value")
	options.Extensions().SetCustom("key", "value")

	// A frozen instance may be reused for more requests
	r1 := request.New(http.MethodGet, "/dbs/db1")
	r2 := request.New(http.MethodGet, "/dbs/db2")
	options.Populate(r1)
	options.Populate(r2)

	assert.Equal(t, r1.Headers().All(), r2.Headers().All())
	assert.Equal(t, r1.ExtensionPropertiesLen(), r2.ExtensionPropertiesLen())
}

func TestRequestOptions_DiagnosticsContextFactory_StoredNotInvoked(t *testing.T) {
	t.Parallel()
	invoked := false
	options := &RequestOptions{}
	options.SetDiagnosticsContextFactory(func() *DiagnosticsContext {
		invoked = true
		return nil
	})

	r := request.New(http.MethodGet, "/dbs/db1")
	options.Populate(r)
	assert.False(t, invoked)
	assert.NotNil(t, options.DiagnosticsContextFactory())
}

func TestRequestOptions_EffectivePartitionKeyRouting(t *testing.T) {
	t.Parallel()
	options := &RequestOptions{}
	assert.False(t, options.EffectivePartitionKeyRouting())
	options.SetEffectivePartitionKeyRouting(true)
	assert.True(t, options.EffectivePartitionKeyRouting())

	// The flag is for the routing layer, Populate ignores it
	r := request.New(http.MethodGet, "/dbs/db1")
	options.Populate(r)
	assert.Equal(t, 0, r.Headers().Len())
}
