package zkzero

import (
	"errors"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/vaultfold/bignum/pkg/bignum"
)

// ErrVerificationFailed is returned by Verify when a proof does not check
// out against the claimed ciphertext.
var ErrVerificationFailed = errors.New("zkzero: proof verification failed")

// Proof is a non-interactive proof that some ciphertext c encrypts zero
// under a Paillier public key: A is the prover's commitment a^N mod N^2,
// and Z is the response a * r^e mod N^2, where e is the Fiat-Shamir
// challenge derived from (N, c, A).
type Proof struct {
	A []byte
	Z []byte
}

// Prove constructs a Proof that ciphertext (big-endian, mod N^2) encrypts
// zero, given the randomness r used to construct it (c = r^N mod N^2).
// Randomness for the proof's own commitment is drawn from src.
func Prove(n, ciphertext, r []byte, src io.Reader) (*Proof, error) {
	N := bignum.New()
	if err := N.SetBytes(n); err != nil {
		return nil, err
	}
	N2 := bignum.New()
	if _, err := N2.Mul(N, N); err != nil {
		return nil, err
	}
	R := bignum.New()
	if err := R.SetBytes(r); err != nil {
		return nil, err
	}

	byteLen := len(n)
	a := bignum.New()
	if err := a.FillRandom(src, byteLen); err != nil {
		return nil, err
	}
	if err := a.Mod(a, N2); err != nil {
		return nil, err
	}

	A := bignum.New()
	if err := A.ExpMod(a, N, N2); err != nil {
		return nil, err
	}

	e := challenge(n, ciphertext, A.Bytes(), N)

	re := bignum.New()
	if err := re.ExpMod(R, e, N2); err != nil {
		return nil, err
	}
	z := bignum.New()
	if _, err := z.Mul(a, re); err != nil {
		return nil, err
	}
	if err := z.Mod(z, N2); err != nil {
		return nil, err
	}

	return &Proof{A: A.Bytes(), Z: z.Bytes()}, nil
}

// Verify checks that proof demonstrates ciphertext encrypts zero under the
// public key with modulus n. It returns ErrVerificationFailed if the proof
// does not check out.
func Verify(n, ciphertext []byte, proof *Proof) error {
	N := bignum.New()
	if err := N.SetBytes(n); err != nil {
		return err
	}
	N2 := bignum.New()
	if _, err := N2.Mul(N, N); err != nil {
		return err
	}
	c := bignum.New()
	if err := c.SetBytes(ciphertext); err != nil {
		return err
	}
	A := bignum.New()
	if err := A.SetBytes(proof.A); err != nil {
		return err
	}
	z := bignum.New()
	if err := z.SetBytes(proof.Z); err != nil {
		return err
	}

	if A.Sign() <= 0 || bignum.Cmp(A, N2) >= 0 {
		return ErrVerificationFailed
	}

	e := challenge(n, ciphertext, proof.A, N)

	lhs := bignum.New()
	if err := lhs.ExpMod(z, N, N2); err != nil {
		return err
	}

	ce := bignum.New()
	if err := ce.ExpMod(c, e, N2); err != nil {
		return err
	}
	rhs := bignum.New()
	if _, err := rhs.Mul(A, ce); err != nil {
		return err
	}
	if err := rhs.Mod(rhs, N2); err != nil {
		return err
	}

	if bignum.Cmp(lhs, rhs) != 0 {
		return ErrVerificationFailed
	}
	return nil
}

// challenge derives the Fiat-Shamir challenge e = H(n || ciphertext || a)
// mod N, using SHA3-256 as the random oracle. Binding the commitment a into
// the hash (rather than drawing e independently) is what makes the
// transform non-interactive without weakening the underlying Sigma
// protocol's soundness.
func challenge(n, ciphertext, a []byte, modulus *bignum.BigInt) *bignum.BigInt {
	h := sha3.New256()
	h.Write(n)
	h.Write(ciphertext)
	h.Write(a)
	digest := h.Sum(nil)

	e := bignum.New()
	_ = e.SetBytes(digest)
	_ = e.Mod(e, modulus)
	return e
}
