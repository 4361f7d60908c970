package docstore

import (
	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/keboola/go-docstore/pkg/request"
)

// ExtensionProperties is out-of-band data carried alongside a request,
// a private side channel between the library layers.
//
// Known uses have a named slot, see SetResourceURI.
// Everything else goes to the free-form map and passes through uninterpreted.
type ExtensionProperties struct {
	resourceURI optional[any]
	custom      *orderedmap.OrderedMap
}

// SetResourceURI fills the well-known resource URI slot.
// The value must be a relative URI, the shape is checked by TryGetResourceURI,
// other producers and consumers of the slot treat it as opaque.
func (p *ExtensionProperties) SetResourceURI(value any) *ExtensionProperties {
	p.resourceURI = newOptional(value)
	return p
}

func (p *ExtensionProperties) ResourceURI() (any, bool) {
	return p.resourceURI.get()
}

// SetCustom stores a free-form entry, the key must not collide with the
// well-known keys of the request package.
func (p *ExtensionProperties) SetCustom(key string, value any) *ExtensionProperties {
	if p.custom == nil {
		p.custom = orderedmap.New()
	}
	p.custom.Set(key, value)
	return p
}

func (p *ExtensionProperties) Custom(key string) (any, bool) {
	if p.custom == nil {
		return nil, false
	}
	return p.custom.Get(key)
}

// copyTo projects the properties into the request mapping, key-for-key.
// Same-named keys already present on the request are overwritten.
func (p *ExtensionProperties) copyTo(r *request.Request) {
	if value, found := p.resourceURI.get(); found {
		r.SetExtensionProperty(request.ExtensionKeyResourceURI, value)
	}
	if p.custom != nil {
		for _, key := range p.custom.Keys() {
			r.SetExtensionProperty(key, p.custom.GetOrNil(key))
		}
	}
}
