// Package api contains the HTTP handlers, request/response models, and
// middleware for the JSON API. Handlers validate request shape, delegate to
// the service layer, and map service errors to HTTP statuses; they contain
// no business logic of their own.
package api
