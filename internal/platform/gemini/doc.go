// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns prompt construction from template files,
// the bounded-retry call to the model, and the fallible parse of the
// model's untrusted text output into domain values.
package gemini
