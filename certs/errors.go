package certs

import "errors"

// Sentinel errors. Callers match them with errors.Is; detail is carried by wrapping.
var (
	// ErrInvalidInput means the client supplied an empty search term.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnavailable covers transport, auth and quota failures of the model call.
	ErrUpstreamUnavailable = errors.New("upstream model unavailable")
	// ErrMalformedModelResponse means no JSON object could be extracted or decoded from the model output.
	ErrMalformedModelResponse = errors.New("malformed model response")
)
