package dlog

import (
	"io"

	"github.com/vaultfold/bignum/pkg/bignum"
)

// DHKeyPair is one party's ephemeral or static Diffie-Hellman key pair
// within a Group.
type DHKeyPair struct {
	Group   *Group
	Private *bignum.BigInt
	Public  *bignum.BigInt
}

// GenerateDHKeyPair draws a random private scalar in [1, Q) and computes the
// corresponding public value g^x mod P.
func GenerateDHKeyPair(grp *Group, src io.Reader) (*DHKeyPair, error) {
	x, err := grp.RandomScalar(src)
	if err != nil {
		return nil, err
	}
	pub, err := grp.Exp(x)
	if err != nil {
		return nil, err
	}
	return &DHKeyPair{Group: grp, Private: x, Public: pub}, nil
}

// SharedSecret computes the Diffie-Hellman shared secret peerPublic^x mod P
// for this key pair's private scalar x. Both parties computing SharedSecret
// against each other's Public value arrive at the same group element.
func (kp *DHKeyPair) SharedSecret(peerPublic *bignum.BigInt) (*bignum.BigInt, error) {
	z := bignum.New()
	if err := z.ExpMod(peerPublic, kp.Private, kp.Group.P); err != nil {
		return nil, err
	}
	return z, nil
}
