// Package services contains stateless domain services that implement business
// logic spanning value objects and aggregates.
//
// BillingCalculator derives a Bill (subtotal, tax, total) from a cart line
// snapshot. It owns the rounding policy: tax is rounded half-up at cent
// precision and the total is the sum of the subtotal and the rounded tax, so
// subtotal + tax == total holds exactly for every bill it produces.
package services
