package bignum

import "io"

// RandSource is the randomness contract every function that draws secret
// material (FillRandom, IsPrime, GenPrime) depends on. crypto/rand.Reader
// satisfies it directly; bignum/rand supplies a deterministic
// ChaCha20-backed source for reproducible tests.
type RandSource = io.Reader
