// Package definitions provides the request builder and response model for
// the clearlydefined.io definitions endpoint.
//
// # Overview
//
// The definitions endpoint accepts a POST with a JSON array of up to 1000
// coordinate strings and answers with a JSON object mapping each coordinate
// to its definition record. This package builds those requests, decodes
// those responses, and nothing more: connection management, retries,
// caching, and scheduling belong to the caller.
//
// # Requests
//
// [Chunks] lazily groups any number of coordinates into bounded chunks, and
// [NewRequest] turns one chunk into a ready-to-send *http.Request. The
// service is slow per request, so dispatching chunks in parallel is the
// expected usage; [Requests] composes the two for sequential callers.
//
// # Tolerant decoding
//
// The service never 404s a coordinate it has not finished analyzing.
// Instead it returns a definition whose described/licensed blocks are
// present but structurally degenerate. [Definition] therefore decodes in
// two phases: recognized keys are captured raw, then each block is decoded
// strictly, and a failure in described or licensed becomes a nil field
// rather than an error. The keys themselves must exist; a payload missing
// them entirely is malformed and fails. This lets callers distinguish
// "not processed yet" (nil blocks) from "response shape is wrong" (error).
//
// # Client
//
//	client := definitions.NewClient(definitions.Options{})
//	defs, err := client.Definitions(ctx, 500, slices.Values(coords))
//	for _, def := range defs {
//	    if !def.Harvested() {
//	        // service knows the coordinate but has not processed it
//	    }
//	}
//
// The Client wraps an injected *http.Client and dispatches chunks with
// bounded parallelism. Point Options.Root at a local mock (see the
// mockserver package) for testing.
//
// # Errors
//
// Failures map onto the codes of the errors package: TRANSPORT_ERROR for
// building or sending a request, HTTP_STATUS (carrying a *errors.StatusError)
// for non-success responses, DECODE_ERROR for undecodable payloads, and
// INVALID_* for bad local input. Non-success responses are never decoded;
// the service does not emit structured error bodies.
package definitions
