// Package cart provides the per-user shopping cart aggregate.
//
// A cart is the mutable pre-checkout list of desired items, at most one per
// user. Each item carries a price snapshot taken when the item was first
// added; the snapshot is display-only and is never refreshed by quantity
// updates nor consulted at checkout. Item quantities stored in the aggregate
// are always at least 1; a non-positive quantity means removal.
package cart
