// Package request defines the wire request model of the library.
//
// A Request is built by the client pipeline for each logical operation.
// The options layer only mutates it in place, see the docstore package.
package request

// Extension property keys shared between the library layers.
// The values are never sent over the wire, they are a private side channel.
const (
	// ExtensionKeyResourceURI is the well-known slot for a pre-resolved relative
	// resource path, see docstore.TryGetResourceURI.
	ExtensionKeyResourceURI = "docstore.resourceUri"
)

// Request is a single wire request under construction.
// It carries an additive header collection and an extension-properties
// mapping with upsert semantics.
type Request struct {
	method     string
	path       string
	headers    Headers
	extensions map[string]any
}

func New(method string, path string) *Request {
	return &Request{method: method, path: path}
}

func (r *Request) Method() string {
	return r.method
}

func (r *Request) Path() string {
	return r.path
}

func (r *Request) Headers() *Headers {
	return &r.headers
}

// SetExtensionProperty stores the value under the key,
// an existing key of the same name is overwritten.
func (r *Request) SetExtensionProperty(key string, value any) {
	if r.extensions == nil {
		r.extensions = make(map[string]any)
	}
	r.extensions[key] = value
}

func (r *Request) ExtensionProperty(key string) (any, bool) {
	value, found := r.extensions[key]
	return value, found
}

func (r *Request) ExtensionPropertiesLen() int {
	return len(r.extensions)
}
