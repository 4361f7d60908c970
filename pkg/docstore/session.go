package docstore

import (
	"strings"

	"github.com/keboola/go-docstore/pkg/request"
)

// SetSessionToken adds the session token header to the request.
// A blank token is a no-op.
//
// It is a free function, not tied to a RequestOptions instance,
// any layer that has resolved a session token may call it.
func SetSessionToken(r *request.Request, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	r.Headers().Add(request.HeaderSessionToken, token)
}
