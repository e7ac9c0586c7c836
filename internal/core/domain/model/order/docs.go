// Package order provides the order aggregate of the fulfillment ledger.
//
// An order is the immutable record of a completed checkout: its line items
// and pricing fields are fixed at creation and never recomputed. Only the
// payment and delivery state mutates afterward, preserving an audit trail.
//
// Key business rules:
//   - line-item prices are captured from the catalog at creation, never from
//     client input
//   - totalPrice equals itemsPrice + taxPrice + shippingPrice, checked at
//     construction
//   - status follows Created -> Paid -> Delivered; delivery requires payment
//   - marking an already paid order paid again is tolerated and overwrites
//     the payment result
package order
