// Package docstore defines how the options of a single logical operation
// are merged into the wire request metadata before it is sent.
//
// A caller constructs a RequestOptions, or one of the specialized variants,
// sets some subset of the fields and hands it to the client pipeline.
// The pipeline calls Populate exactly once per request before transmission.
// All fields are optional, an unset field contributes nothing to the request.
package docstore
