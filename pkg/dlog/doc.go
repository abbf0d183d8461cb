// Package dlog implements classical discrete-log-based primitives over a
// safe-prime multiplicative group: Diffie-Hellman key agreement, a Schnorr
// non-interactive zero-knowledge proof of knowledge of a discrete log, and
// FIPS 186-4-style DSA signing and verification.
//
// # Group generation
//
// NewSafePrimeGroup generates a safe prime P = 2Q+1 (both P and Q prime) of
// the requested bit length and a generator g of the order-Q subgroup, using
// pkg/bignum's GenPrime in safe-prime mode. Working in the order-Q subgroup
// (rather than the full multiplicative group of order P-1, which has small
// factors by construction) is what makes the discrete-log problem hard in
// this group and is required for both the Diffie-Hellman and DSA
// constructions below to be meaningful.
package dlog
