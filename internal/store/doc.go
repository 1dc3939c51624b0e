// Package store defines the persistence interfaces for the application's
// entities and the error taxonomy shared by all store implementations.
// Concrete implementations live in internal/platform/postgres.
package store
