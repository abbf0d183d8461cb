// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static-analysis tests used internally by the bignum
// module for validation and consistency checks. It is not intended for
// external use and the API may change without notice.
//
// # Internal use only
//
// This package is part of the internal implementation and should not be
// imported by applications using the bignum library. Use the public API
// provided by pkg/bignum and its subpackages instead.
package internalcheck
