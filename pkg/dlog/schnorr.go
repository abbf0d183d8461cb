package dlog

import (
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/vaultfold/bignum/pkg/bignum"
)

// SchnorrProof is a non-interactive proof of knowledge of the discrete log
// x of a public value y = g^x mod P, binding an application-supplied
// message into the Fiat-Shamir challenge so the proof can't be replayed
// against a different message.
type SchnorrProof struct {
	Commitment *bignum.BigInt // t = g^k mod P
	Response   *bignum.BigInt // s = k + e*x mod Q
}

// Prove constructs a SchnorrProof that the prover knows x such that
// y = g^x mod P, binding message into the challenge. Randomness for the
// proof's own commitment is drawn from src.
func Prove(grp *Group, x *bignum.BigInt, y *bignum.BigInt, message []byte, src io.Reader) (*SchnorrProof, error) {
	k, err := grp.RandomScalar(src)
	if err != nil {
		return nil, err
	}
	t, err := grp.Exp(k)
	if err != nil {
		return nil, err
	}

	e := schnorrChallenge(grp, y, t, message)

	ex := bignum.New()
	if _, err := ex.Mul(e, x); err != nil {
		return nil, err
	}
	s := bignum.New()
	if _, err := s.Add(k, ex); err != nil {
		return nil, err
	}
	if err := s.Mod(s, grp.Q); err != nil {
		return nil, err
	}

	return &SchnorrProof{Commitment: t, Response: s}, nil
}

// VerifyProof checks a SchnorrProof against public value y and the bound
// message: it accepts iff g^s == t * y^e mod P, where e is recomputed from
// (y, t, message) exactly as Prove derived it.
func VerifyProof(grp *Group, y *bignum.BigInt, message []byte, proof *SchnorrProof) error {
	e := schnorrChallenge(grp, y, proof.Commitment, message)

	lhs, err := grp.Exp(proof.Response)
	if err != nil {
		return err
	}

	ye := bignum.New()
	if err := ye.ExpMod(y, e, grp.P); err != nil {
		return err
	}
	rhs := bignum.New()
	if _, err := rhs.Mul(proof.Commitment, ye); err != nil {
		return err
	}
	if err := rhs.Mod(rhs, grp.P); err != nil {
		return err
	}

	if bignum.Cmp(lhs, rhs) != 0 {
		return ErrInvalidSignature
	}
	return nil
}

// schnorrChallenge derives e = H(P, y, t, message) mod Q via SHA3-256,
// binding the group's modulus so a proof cannot be replayed across groups.
func schnorrChallenge(grp *Group, y, t *bignum.BigInt, message []byte) *bignum.BigInt {
	h := sha3.New256()
	h.Write(grp.P.Bytes())
	h.Write(y.Bytes())
	h.Write(t.Bytes())
	h.Write(message)
	digest := h.Sum(nil)

	e := bignum.New()
	_ = e.SetBytes(digest)
	_ = e.Mod(e, grp.Q)
	return e
}
