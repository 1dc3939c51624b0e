// Package postgres provides PostgreSQL implementations of the store
// interfaces using the pgx driver through database/sql. Database errors are
// mapped to the sentinel errors in the store package so callers never match
// on driver-specific error codes.
package postgres
