// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: integer-cent currency amount used for all billing arithmetic
//
// Both types are immutable, validated at construction, and safe for
// concurrent use. They carry no behavior specific to any single aggregate,
// which is why they live in the shared kernel rather than in the cart or
// order packages.
package kernel
