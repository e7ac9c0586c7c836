// Package kernel contains the shared value objects of the storefront domain:
// UUID identifiers and Money amounts.
//
// Both types are immutable. Their zero values are treated differently: a zero
// UUID is invalid and must come from a constructor, while the zero Money is a
// perfectly valid 0.00 amount. Money keeps amounts as integer cents so that
// line-item sums and the order total invariant hold exactly, with rounding to
// two decimals happening only at construction and rate multiplication.
package kernel
