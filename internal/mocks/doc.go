// Package mocks provides shared mock implementations of the application's
// interfaces for use in tests. Each mock supports per-test function overrides
// plus simple default values, and the generator mock records its calls so
// tests can assert the model was (or was not) invoked.
package mocks
