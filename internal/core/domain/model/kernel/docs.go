// Package kernel contains shared value objects used across all domain aggregates.
// These are the building blocks of the domain model: strongly-typed identifiers
// that cannot be created in an invalid state.
package kernel
