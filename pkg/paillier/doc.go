// Package paillier implements the Paillier homomorphic cryptosystem on top
// of pkg/bignum.
//
// The Paillier cryptosystem is a probabilistic asymmetric algorithm for
// public key cryptography with additive homomorphic properties. It allows
// computation on encrypted data without decrypting it first.
//
// # Key operations
//
//   - Generate(): create a new keypair
//   - FromPublicKey(): create from modulus N (public key only)
//   - FromPrivateKey(): create from N, p, q (full private key)
//   - Encrypt(): encrypt plaintext to ciphertext
//   - Decrypt(): decrypt ciphertext to plaintext (requires private key)
//   - AddCiphers(): homomorphically add two ciphertexts, E(a)*E(b) = E(a+b)
//   - MulScalar(): homomorphically multiply a ciphertext by a scalar,
//     E(a)^k = E(a*k)
//   - VerifyCipher(): verify that a ciphertext is well-formed for this key
//   - Serialize()/Deserialize(): save and load keys
//
// # Memory management
//
// A Paillier holding a private key carries lambda and mu in memory for the
// lifetime of the value; Close() zeroizes them. Values created via
// FromPublicKey never hold private material; Close() has nothing to zeroize
// for them but still marks them closed, after which their operations return
// ErrClosed.
//
// # Usage
//
//	pai, err := paillier.Generate(2048, rand.Reader)
//	if err != nil {
//	    return err
//	}
//	defer pai.Close()
//
//	c1, _ := pai.Encrypt(big.NewInt(3).Bytes(), rand.Reader)
//	c2, _ := pai.Encrypt(big.NewInt(5).Bytes(), rand.Reader)
//	cSum, _ := pai.AddCiphers(c1, c2)
//	plaintext, _ := pai.Decrypt(cSum) // 8
package paillier
