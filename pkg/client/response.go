package client

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/keboola/go-docstore/pkg/docstore"
	"github.com/keboola/go-docstore/pkg/request"
)

// Response of one sent operation.
type Response struct {
	statusCode  int
	body        []byte
	header      http.Header
	diagnostics *docstore.DiagnosticsContext
}

func newResponse(transportRes *resty.Response, diagnostics *docstore.DiagnosticsContext) *Response {
	return &Response{
		statusCode:  transportRes.StatusCode(),
		body:        transportRes.Body(),
		header:      transportRes.Header(),
		diagnostics: diagnostics,
	}
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

func (r *Response) IsSuccess() bool {
	return r.statusCode >= http.StatusOK && r.statusCode < http.StatusMultipleChoices
}

func (r *Response) Body() []byte {
	return r.body
}

func (r *Response) Header(name string) string {
	return r.header.Get(name)
}

// ETag of the returned resource, empty if the service sent none.
func (r *Response) ETag() string {
	return r.header.Get("ETag")
}

// SessionToken echoed by the service, feed it back to the next
// session-consistent operation.
func (r *Response) SessionToken() string {
	return r.header.Get(request.HeaderSessionToken)
}

func (r *Response) Diagnostics() *docstore.DiagnosticsContext {
	return r.diagnostics
}
