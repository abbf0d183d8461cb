package dlog

import "errors"

var (
	// ErrGeneratorNotFound is returned by NewSafePrimeGroup if no generator
	// of the order-Q subgroup turns up within its retry budget (this should
	// not happen in practice; every quadratic residue other than 1 and P-1
	// generates the subgroup).
	ErrGeneratorNotFound = errors.New("dlog: failed to find a subgroup generator")
	// ErrInvalidSignature is returned by Verify (DSA) and VerifyProof
	// (Schnorr) when a signature or proof does not check out.
	ErrInvalidSignature = errors.New("dlog: invalid signature or proof")
	// ErrOutOfRange is returned when a supplied scalar is not in [1, Q).
	ErrOutOfRange = errors.New("dlog: value out of range for group order")
)
