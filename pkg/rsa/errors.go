package rsa

import "errors"

var (
	// ErrMessageTooLarge is returned by Encrypt/Sign when the input integer
	// is not smaller than the modulus N.
	ErrMessageTooLarge = errors.New("rsa: message representative out of range")
	// ErrNoPrivateKey is returned by Decrypt/Sign when called on a
	// public-key-only KeyPair.
	ErrNoPrivateKey = errors.New("rsa: operation requires a private key")
	// ErrVerificationFailed is returned by Verify when a signature does not
	// check out against the claimed message.
	ErrVerificationFailed = errors.New("rsa: signature verification failed")
	// ErrInvalidKey is returned when key material fails to describe a
	// consistent RSA key (e not coprime with (p-1)(q-1), or a public modulus
	// or exponent not greater than 1), or when GenerateKey is asked for fewer
	// than 16 bits. Primality of p and q is not checked.
	ErrInvalidKey = errors.New("rsa: invalid key material")
)
