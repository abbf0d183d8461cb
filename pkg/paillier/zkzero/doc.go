// Package zkzero implements a non-interactive zero-knowledge proof that a
// Paillier ciphertext encrypts zero, using the Fiat-Shamir transform over a
// Sigma protocol.
//
// The statement proved is: given a Paillier public key (N, N^2) and a
// ciphertext c, the prover knows r such that c = r^N mod N^2 (i.e. c
// encrypts 0 under randomness r). This is the building block higher-level
// protocols use to prove a Paillier ciphertext was honestly constructed
// without revealing the randomness used.
package zkzero
