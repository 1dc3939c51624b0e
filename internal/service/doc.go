// Package service contains the application services sitting between the API
// handlers and the stores/generators. SuggestionService implements the
// pipeline's "never fails" contract by substituting deterministic fallbacks
// for any generator error; the CRUD services orchestrate domain construction
// and user-scoped persistence.
package service
