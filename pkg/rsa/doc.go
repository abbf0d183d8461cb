// Package rsa implements textbook RSA key generation, encryption, and
// signing on top of pkg/bignum.
//
// # Key generation
//
// GenerateKey searches for two distinct primes of bits/2 bits each and
// derives the usual (N, e, d) triple with e fixed at 65537. The two
// candidate searches run concurrently via golang.org/x/sync/errgroup,
// since each is an independent, CPU-bound Miller-Rabin search with no
// shared state until both finish.
//
// # Padding
//
// This package deliberately implements only the raw (unpadded) primitive:
// Encrypt/Decrypt and Sign/Verify operate directly on an integer less than
// N. Production RSA requires OAEP or PSS padding on top of this; the
// padding scheme is out of scope here (see the package-level Non-goal),
// but every operation is structured so a padding layer can be added without
// touching the bignum arithmetic underneath.
package rsa
