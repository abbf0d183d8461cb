package dlog

import (
	"io"

	"github.com/vaultfold/bignum/pkg/bignum"
)

// DSAKeyPair is a FIPS 186-4-style DSA key pair over a Group whose order Q
// plays the role of the standard's subgroup order q and whose modulus P
// plays the role of p.
type DSAKeyPair struct {
	Group   *Group
	Private *bignum.BigInt
	Public  *bignum.BigInt
}

// GenerateDSAKeyPair draws a random private scalar in [1, Q) and computes
// the corresponding public value g^x mod P.
func GenerateDSAKeyPair(grp *Group, src io.Reader) (*DSAKeyPair, error) {
	x, err := grp.RandomScalar(src)
	if err != nil {
		return nil, err
	}
	y, err := grp.Exp(x)
	if err != nil {
		return nil, err
	}
	return &DSAKeyPair{Group: grp, Private: x, Public: y}, nil
}

// DSASignature is a DSA signature pair (r, s), both reduced mod Q.
type DSASignature struct {
	R *bignum.BigInt
	S *bignum.BigInt
}

// Sign signs a digest (the caller's already-hashed message, per FIPS 186-4
// truncated to Q's bit length by the caller) with a fresh per-signature
// nonce k drawn from src. Signing retries internally with a fresh k on the
// vanishingly rare r == 0 or s == 0 outcome, matching the standard's
// requirement that neither component may be zero.
func (kp *DSAKeyPair) Sign(digest []byte, src io.Reader) (*DSASignature, error) {
	grp := kp.Group

	h := bignum.New()
	if err := h.SetBytes(digest); err != nil {
		return nil, err
	}
	if err := h.Mod(h, grp.Q); err != nil {
		return nil, err
	}

	for {
		k, err := grp.RandomScalar(src)
		if err != nil {
			return nil, err
		}

		gk, err := grp.Exp(k)
		if err != nil {
			return nil, err
		}
		r := bignum.New()
		if err := r.Mod(gk, grp.Q); err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}

		kInv := bignum.New()
		if err := kInv.InvMod(k, grp.Q); err != nil {
			return nil, err
		}

		xr := bignum.New()
		if _, err := xr.Mul(kp.Private, r); err != nil {
			return nil, err
		}
		hxr := bignum.New()
		if _, err := hxr.Add(h, xr); err != nil {
			return nil, err
		}
		s := bignum.New()
		if _, err := s.Mul(kInv, hxr); err != nil {
			return nil, err
		}
		if err := s.Mod(s, grp.Q); err != nil {
			return nil, err
		}
		if s.IsZero() {
			continue
		}

		return &DSASignature{R: r, S: s}, nil
	}
}

// Verify checks sig against digest and the public value y.
func Verify(grp *Group, y *bignum.BigInt, digest []byte, sig *DSASignature) error {
	if sig.R.Sign() <= 0 || bignum.Cmp(sig.R, grp.Q) >= 0 {
		return ErrOutOfRange
	}
	if sig.S.Sign() <= 0 || bignum.Cmp(sig.S, grp.Q) >= 0 {
		return ErrOutOfRange
	}

	h := bignum.New()
	if err := h.SetBytes(digest); err != nil {
		return err
	}
	if err := h.Mod(h, grp.Q); err != nil {
		return err
	}

	w := bignum.New()
	if err := w.InvMod(sig.S, grp.Q); err != nil {
		return err
	}

	u1 := bignum.New()
	if _, err := u1.Mul(h, w); err != nil {
		return err
	}
	if err := u1.Mod(u1, grp.Q); err != nil {
		return err
	}
	u2 := bignum.New()
	if _, err := u2.Mul(sig.R, w); err != nil {
		return err
	}
	if err := u2.Mod(u2, grp.Q); err != nil {
		return err
	}

	gu1, err := grp.Exp(u1)
	if err != nil {
		return err
	}
	yu2 := bignum.New()
	if err := yu2.ExpMod(y, u2, grp.P); err != nil {
		return err
	}
	v := bignum.New()
	if _, err := v.Mul(gu1, yu2); err != nil {
		return err
	}
	if err := v.Mod(v, grp.P); err != nil {
		return err
	}
	if err := v.Mod(v, grp.Q); err != nil {
		return err
	}

	if bignum.Cmp(v, sig.R) != 0 {
		return ErrInvalidSignature
	}
	return nil
}
