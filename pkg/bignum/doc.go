// Package bignum implements arbitrary-precision signed integer arithmetic for
// classical public-key cryptography: RSA, Diffie-Hellman, DSA, and related
// primitives. It supplies the full set of arithmetic operations over signed
// integers of unbounded width, modular arithmetic with Montgomery-based
// exponentiation, a Miller-Rabin probable-prime test, prime and safe-prime
// generation, and the constant-time conditional-assign/swap primitives
// required by higher-level code to avoid data-dependent memory traces.
//
// # Limb width
//
// BigInt is digit-agnostic: a limb (Word) is the platform's native machine
// word, 32 or 64 bits depending on math/bits.UintSize. Nothing in the public
// API depends on a specific width.
//
// # Ownership and aliasing
//
// A BigInt owns its limb buffer exclusively. Assigning one BigInt's contents
// to another (Set) copies the buffer; Swap exchanges buffers without
// reallocating. Every operation that writes into a receiver accepts aliasing
// between the receiver and any argument; where that requires staging through
// a temporary, the implementation does so internally.
//
// # Secret independence
//
// Only CondAssign, CondSwap, and Montgomery multiplication and reduction
// (MontgomeryContext.Mul and MontgomeryContext.Reduce) have a memory-access
// and branch pattern independent of the values involved. Every other
// operation — addition, subtraction, schoolbook multiplication and division,
// GCD, modular inverse, primality testing, and ExpMod, which branches on the
// exponent's bits and reduces its base with Mod — is value-dependent and
// must not be used directly on secret data.
//
// # Concurrency
//
// The package has no internal goroutines and performs no I/O beyond what a
// caller-supplied RandSource (an io.Reader) does. Every operation is synchronous. A BigInt
// is mutable state and must not be mutated concurrently from more than one
// goroutine; independent BigInt values may be used from separate goroutines
// without synchronization.
package bignum
