package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrGenerationFailed is returned when generation fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate suggestions")

	// ErrInvalidResponse is returned when the model response cannot be parsed
	// into the expected structure (not JSON, not an array, or malformed items).
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyResponse is returned when the model produces no usable text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve
	// on retry, such as network faults or quota exhaustion.
	ErrTransientFailure = errors.New("transient error during generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
