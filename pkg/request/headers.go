package request

import "strings"

// Header names understood by the service.
// The values must match exactly what the transport expects.
const (
	HeaderIfMatch          = "If-Match"
	HeaderIfNoneMatch      = "If-None-Match"
	HeaderSessionToken     = "X-Docstore-Session-Token"
	HeaderConsistencyLevel = "X-Docstore-Consistency-Level"
	HeaderActivityID       = "X-Docstore-Activity-Id"
	HeaderUserAgent        = "User-Agent"
)

// Header is one name/value entry of the Headers collection.
type Header struct {
	Name  string
	Value string
}

// Headers is an additive header collection.
// Add permits duplicate names, entries keep the insertion order,
// names are matched case-insensitively on read, values are stored verbatim.
type Headers struct {
	entries []Header
}

func (h *Headers) Add(name string, value string) {
	h.entries = append(h.entries, Header{Name: name, Value: value})
}

// Get returns the first value added under the name.
func (h *Headers) Get(name string) (string, bool) {
	for _, entry := range h.entries {
		if strings.EqualFold(entry.Name, name) {
			return entry.Value, true
		}
	}
	return "", false
}

// Values returns all values added under the name, in insertion order.
func (h *Headers) Values(name string) []string {
	var out []string
	for _, entry := range h.entries {
		if strings.EqualFold(entry.Name, name) {
			out = append(out, entry.Value)
		}
	}
	return out
}

func (h *Headers) Len() int {
	return len(h.entries)
}

// All returns a copy of all entries, in insertion order.
func (h *Headers) All() []Header {
	out := make([]Header, len(h.entries))
	copy(out, h.entries)
	return out
}
