// Package cart provides the Cart aggregate for the active ordering session.
//
// The package includes:
//   - Cart: the mutable pre-placement collection of selected items
//   - Line: an immutable item reference with captured unit price and quantity
//
// Key business rules:
//   - Quantities below 1 are rejected; zero-quantity lines never exist
//   - Adding an item twice merges into one line with summed quantity
//   - The unit price of a line is fixed at first add, not re-fetched later
//   - Clearing the cart is atomic with successful order placement
//
// A Cart exists per session; deriving an Order from it snapshots the lines
// immutably and empties the cart in the same operation.
package cart
