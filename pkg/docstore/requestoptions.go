package docstore

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"

	"github.com/keboola/go-docstore/pkg/request"
)

// RequestOptions hold the per-operation request intent.
// The zero value is ready to use, all fields are optional.
//
// An instance belongs to one logical operation. Populate does not mutate
// the options, a fully configured, frozen instance may be shared between
// operations, concurrent mutation of the same instance is not safe.
type RequestOptions struct {
	ifMatchETag                  optional[string]
	ifNoneMatchETag              optional[string]
	customHeaders                *orderedmap.OrderedMap
	effectivePartitionKeyRouting bool
	consistency                  optional[ConsistencyLevel]
	diagnosticsContextFactory    DiagnosticsContextFactory
	extensions                   *ExtensionProperties
}

// SetIfMatchETag sets the optimistic concurrency precondition,
// the operation is applied only if the stored ETag matches.
func (o *RequestOptions) SetIfMatchETag(etag string) *RequestOptions {
	o.ifMatchETag = newOptional(etag)
	return o
}

func (o *RequestOptions) IfMatchETag() (string, bool) {
	return o.ifMatchETag.get()
}

// SetIfNoneMatchETag sets the negative precondition,
// the operation is applied only if the stored ETag differs.
func (o *RequestOptions) SetIfNoneMatchETag(etag string) *RequestOptions {
	o.ifNoneMatchETag = newOptional(etag)
	return o
}

func (o *RequestOptions) IfNoneMatchETag() (string, bool) {
	return o.ifNoneMatchETag.get()
}

// SetCustomHeaders replaces the custom headers map.
// The entries are the final, caller-authoritative values for those names,
// they are added to the request verbatim, in the map order.
func (o *RequestOptions) SetCustomHeaders(headers *orderedmap.OrderedMap) *RequestOptions {
	o.customHeaders = headers
	return o
}

func (o *RequestOptions) AddCustomHeader(name string, value string) *RequestOptions {
	if o.customHeaders == nil {
		o.customHeaders = orderedmap.New()
	}
	o.customHeaders.Set(name, value)
	return o
}

func (o *RequestOptions) CustomHeaders() *orderedmap.OrderedMap {
	return o.customHeaders
}

// SetEffectivePartitionKeyRouting enables routing by the pre-computed
// effective partition key, the flag is read by the routing layer.
func (o *RequestOptions) SetEffectivePartitionKeyRouting(enabled bool) *RequestOptions {
	o.effectivePartitionKeyRouting = enabled
	return o
}

func (o *RequestOptions) EffectivePartitionKeyRouting() bool {
	return o.effectivePartitionKeyRouting
}

// SetDiagnosticsContextFactory stores the factory.
// The options layer never invokes it, that is the pipeline's responsibility.
func (o *RequestOptions) SetDiagnosticsContextFactory(factory DiagnosticsContextFactory) *RequestOptions {
	o.diagnosticsContextFactory = factory
	return o
}

func (o *RequestOptions) DiagnosticsContextFactory() DiagnosticsContextFactory {
	return o.diagnosticsContextFactory
}

func (o *RequestOptions) ConsistencyLevel() (ConsistencyLevel, bool) {
	return o.consistency.get()
}

// setConsistencyLevel is unexported on purpose, each specialized variant
// decides whether to expose a public setter, see for example ItemRequestOptions.
func (o *RequestOptions) setConsistencyLevel(level ConsistencyLevel) {
	o.consistency = newOptional(level)
}

// Extensions returns the extension properties, initialized on first use.
// It is a builder accessor, do not call it on a frozen, shared instance.
func (o *RequestOptions) Extensions() *ExtensionProperties {
	if o.extensions == nil {
		o.extensions = &ExtensionProperties{}
	}
	return o.extensions
}

// Populate writes the derived request metadata into the request, in a fixed order:
// extension properties first, then the If-Match/If-None-Match preconditions,
// then the custom headers.
//
// The header collection is additive, calling Populate twice duplicates the
// header entries, the caller must invoke it once per request lifecycle.
// The request must not be nil.
func (o *RequestOptions) Populate(r *request.Request) {
	if o.extensions != nil {
		o.extensions.copyTo(r)
	}
	if etag, found := o.ifMatchETag.get(); found {
		r.Headers().Add(request.HeaderIfMatch, etag)
	}
	if etag, found := o.ifNoneMatchETag.get(); found {
		r.Headers().Add(request.HeaderIfNoneMatch, etag)
	}
	if o.customHeaders != nil {
		for _, name := range o.customHeaders.Keys() {
			r.Headers().Add(name, cast.ToString(o.customHeaders.GetOrNil(name)))
		}
	}
}
