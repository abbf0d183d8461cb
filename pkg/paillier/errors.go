package paillier

import "errors"

var (
	// ErrClosed is returned by any operation on a Paillier value after
	// Close has been called on it.
	ErrClosed = errors.New("paillier: use of closed key")
	// ErrNoPrivateKey is returned by Decrypt when called on a public-key-only
	// Paillier value.
	ErrNoPrivateKey = errors.New("paillier: operation requires a private key")
	// ErrPlaintextTooLarge is returned by Encrypt when the plaintext is not
	// smaller than the modulus N.
	ErrPlaintextTooLarge = errors.New("paillier: plaintext out of range")
	// ErrInvalidCiphertext is returned by Decrypt, AddCiphers, MulScalar,
	// and VerifyCipher when a ciphertext falls outside [1, N^2); VerifyCipher
	// also returns it when the ciphertext is not a unit modulo N^2.
	ErrInvalidCiphertext = errors.New("paillier: invalid ciphertext")
	// ErrInvalidKey is returned when N, p, or q fail to describe a valid
	// Paillier modulus (N not odd and greater than 1, p*q != N, or lambda
	// not invertible mod N), or when Generate is asked for fewer than 16
	// bits. Primality of p and q is not checked.
	ErrInvalidKey = errors.New("paillier: invalid key material")
	// ErrMalformedData is returned by Deserialize when data is not a
	// recognizable serialized key.
	ErrMalformedData = errors.New("paillier: malformed serialized data")
)
