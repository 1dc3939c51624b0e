// Package generation defines the boundary between the application core and
// external AI/LLM services. It contains the Generator interface implemented
// by the Gemini platform adapter, the error taxonomy for generation failures,
// and the deterministic fallback templates used when the model is unavailable
// or returns unusable output.
package generation
