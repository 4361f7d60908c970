package client

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/keboola/go-docstore/internal/pkg/utils/errors"
	"github.com/keboola/go-docstore/pkg/docstore"
	"github.com/keboola/go-docstore/pkg/request"
)

// OperationOptions is the part of the docstore options layer consumed by the
// pipeline. docstore.RequestOptions and all its variants satisfy it.
type OperationOptions interface {
	Populate(r *request.Request)
	ConsistencyLevel() (docstore.ConsistencyLevel, bool)
	DiagnosticsContextFactory() docstore.DiagnosticsContextFactory
}

// sessionTokenProvider is satisfied by variants that pin the operation
// to a session, see docstore.ItemRequestOptions.
type sessionTokenProvider interface {
	SessionToken() (string, bool)
}

// Send transmits one logical operation. The options may be nil.
func (c *Client) Send(ctx context.Context, r *request.Request, options OperationOptions) (*Response, error) {
	if r == nil {
		return nil, errors.New("request cannot be nil")
	}

	// Create the diagnostics context, via the caller's factory if present
	var diagnostics *docstore.DiagnosticsContext
	if options != nil {
		if factory := options.DiagnosticsContextFactory(); factory != nil {
			diagnostics = factory()
		}
	}
	if diagnostics == nil {
		diagnostics = docstore.NewDiagnosticsContext(c.clock)
	}
	r.Headers().Add(request.HeaderActivityID, diagnostics.ActivityID())

	// Merge the options into the request metadata, once per request lifecycle
	if options != nil {
		options.Populate(r)
		if level, found := options.ConsistencyLevel(); found {
			r.Headers().Add(request.HeaderConsistencyLevel, level.String())
		}
		if provider, ok := options.(sessionTokenProvider); ok {
			if token, found := provider.SessionToken(); found {
				docstore.SetSessionToken(r, token)
			}
		}
	}

	// Project the request onto the transport.
	// Header name canonicalization and validation happen at this boundary,
	// they are the transport's concern, not the options layer's.
	transportReq := c.resty.R().SetContext(ctx)
	for _, header := range r.Headers().All() {
		transportReq.Header.Add(header.Name, header.Value)
	}

	startedAt := c.clock.Now()
	transportRes, err := transportReq.Execute(r.Method(), r.Path())
	elapsed := c.clock.Since(startedAt)
	if err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("%s %s | error | %s", r.Method(), r.Path(), elapsed))
		return nil, errors.PrefixErrorf(err, `request "%s %s" failed`, r.Method(), r.Path())
	}

	diagnostics.AddAttribute(
		attribute.String("db.operation.activity_id", diagnostics.ActivityID()),
		attribute.Int("http.status_code", transportRes.StatusCode()),
	)
	c.logger.Debug(ctx, fmt.Sprintf("%s %s | %d | %s", r.Method(), r.Path(), transportRes.StatusCode(), elapsed))

	return newResponse(transportRes, diagnostics), nil
}
