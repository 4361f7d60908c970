package docstore

import (
	"net/url"

	"github.com/spf13/cast"

	"github.com/keboola/go-docstore/internal/pkg/utils/errors"
	"github.com/keboola/go-docstore/pkg/request"
)

// TryGetResourceURI reads the pre-resolved resource path from the well-known
// extension properties slot, see request.ExtensionKeyResourceURI.
//
// An unset slot is not an error, found=false is returned.
// The value must be a relative URI, a *url.URL or any value convertible
// to a string. Anything else, and any absolute URI, is rejected with an
// InvalidArgumentError: blame the producer of the slot, not the service.
func TryGetResourceURI(options *RequestOptions) (*url.URL, bool, error) {
	if options == nil || options.extensions == nil {
		return nil, false, nil
	}

	value, found := options.extensions.resourceURI.get()
	if !found {
		return nil, false, nil
	}

	uri, err := valueToURL(value)
	if err != nil {
		return nil, false, NewInvalidArgumentError(err)
	}
	if uri.IsAbs() || uri.Host != "" {
		return nil, false, NewInvalidArgumentError(errors.Errorf(
			`extension property "%s" must be a relative URI, found "%s"`,
			request.ExtensionKeyResourceURI, uri.String(),
		))
	}

	return uri, true, nil
}

func valueToURL(value any) (*url.URL, error) {
	if uri, ok := value.(*url.URL); ok {
		return uri, nil
	}

	str, err := cast.ToStringE(value)
	if err != nil {
		return nil, errors.Errorf(
			`extension property "%s" must be a relative URI, found type %T`,
			request.ExtensionKeyResourceURI, value,
		)
	}

	uri, err := url.Parse(str)
	if err != nil {
		return nil, errors.PrefixErrorf(err,
			`extension property "%s" must be a relative URI`,
			request.ExtensionKeyResourceURI,
		)
	}
	return uri, nil
}
