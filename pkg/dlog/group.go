package dlog

import (
	"context"
	"io"
	"time"

	"github.com/vaultfold/bignum/pkg/bignum"
	"github.com/vaultfold/bignum/pkg/bignum/logging"
)

// logger logs the bit length and timing of the safe-prime search
// NewSafePrimeGroup runs, never the prime itself.
var logger = logging.New(nil)

// Group describes a safe-prime multiplicative group Z_P^*, together with a
// generator G of its order-Q subgroup, where P = 2Q + 1.
type Group struct {
	P *bignum.BigInt
	Q *bignum.BigInt
	G *bignum.BigInt
}

// NewSafePrimeGroup generates a new Group with a bits-bit safe prime P,
// drawing randomness from src. It searches candidate generators 2, 3, 4,
// ... and accepts the first g for which g^Q mod P == 1 and g != 1, which
// certifies that g generates the order-Q subgroup (the only subgroups of
// Z_P^* are of order 1, 2, Q, and 2Q since P-1 = 2Q with Q prime).
func NewSafePrimeGroup(bits int, src io.Reader) (*Group, error) {
	ctx := context.Background()
	logger.Debug(ctx, "starting safe-prime search", "bits", bits)
	start := time.Now()

	p, err := bignum.GenPrime(bits, src, bignum.GenPrimeOptions{Safe: true})
	if err != nil {
		logger.Error(ctx, "safe-prime search failed", "bits", bits, "err", err)
		return nil, err
	}
	logger.Debug(ctx, "safe-prime search complete", logging.Redacted("p"), "bits", bits, "duration", time.Since(start))
	q := bignum.New()
	if _, err := q.SubInt64(p, 1); err != nil {
		return nil, err
	}
	if err := q.ShiftR(1); err != nil {
		return nil, err
	}

	for candidate := int64(2); candidate < 1000; candidate++ {
		g := bignum.NewFromInt64(candidate)
		gq := bignum.New()
		if err := gq.ExpMod(g, q, p); err != nil {
			return nil, err
		}
		if gq.CmpInt64(1) == 0 {
			logger.Info(ctx, "generated safe-prime group", "bits", bits, "generator", candidate)
			return &Group{P: p, Q: q, G: g}, nil
		}
	}
	return nil, ErrGeneratorNotFound
}

// RandomScalar returns a random element of [1, Q), drawing randomness from
// src: a random byte string as long as Q is reduced mod Q and redrawn if
// zero, so the result is not exactly uniform over [1, Q).
func (grp *Group) RandomScalar(src io.Reader) (*bignum.BigInt, error) {
	byteLen := len(grp.Q.Bytes())
	for {
		x := bignum.New()
		if err := x.FillRandom(src, byteLen); err != nil {
			return nil, err
		}
		if err := x.Mod(x, grp.Q); err != nil {
			return nil, err
		}
		if !x.IsZero() {
			return x, nil
		}
	}
}

// Exp computes grp.G^x mod grp.P.
func (grp *Group) Exp(x *bignum.BigInt) (*bignum.BigInt, error) {
	z := bignum.New()
	if err := z.ExpMod(grp.G, x, grp.P); err != nil {
		return nil, err
	}
	return z, nil
}
