package types

import "errors"

// Error taxonomy for the request pipeline. Handlers map these onto HTTP
// status codes: validation -> 400, everything else -> 500.
var (
	// ErrValidation marks a malformed or incomplete request payload.
	// Never retried and never triggers external calls.
	ErrValidation = errors.New("validation failed")

	// ErrGeneration marks an LLM call failure or a response that could not
	// be normalized into a usable document.
	ErrGeneration = errors.New("generation failed")

	// ErrPersistence marks a storage write failure. A generated itinerary
	// is still returned to the caller when only persistence failed.
	ErrPersistence = errors.New("persistence failed")
)
