package dlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultfold/bignum/pkg/bignum"
	"github.com/vaultfold/bignum/pkg/bignum/rand"
)

func TestNewSafePrimeGroup(t *testing.T) {
	src := rand.Deterministic([32]byte{30})

	grp, err := NewSafePrimeGroup(48, src)
	require.NoError(t, err)

	// P = 2Q + 1.
	twoQ := bignum.New()
	_, err = twoQ.MulInt64(grp.Q, 2)
	require.NoError(t, err)
	_, err = twoQ.AddInt64(twoQ, 1)
	require.NoError(t, err)
	require.Equal(t, 0, bignum.Cmp(twoQ, grp.P))

	// G generates the order-Q subgroup: G^Q == 1 mod P, G != 1.
	gq := bignum.New()
	require.NoError(t, gq.ExpMod(grp.G, grp.Q, grp.P))
	require.Equal(t, 0, gq.CmpInt64(1))
	require.NotEqual(t, 0, grp.G.CmpInt64(1))
}

func TestDiffieHellmanSharedSecretAgrees(t *testing.T) {
	src := rand.Deterministic([32]byte{31})

	grp, err := NewSafePrimeGroup(48, src)
	require.NoError(t, err)

	alice, err := GenerateDHKeyPair(grp, src)
	require.NoError(t, err)
	bob, err := GenerateDHKeyPair(grp, src)
	require.NoError(t, err)

	sharedAlice, err := alice.SharedSecret(bob.Public)
	require.NoError(t, err)
	sharedBob, err := bob.SharedSecret(alice.Public)
	require.NoError(t, err)

	require.Equal(t, 0, bignum.Cmp(sharedAlice, sharedBob))
}

func TestSchnorrProveVerify(t *testing.T) {
	src := rand.Deterministic([32]byte{32})

	grp, err := NewSafePrimeGroup(48, src)
	require.NoError(t, err)

	kp, err := GenerateDHKeyPair(grp, src)
	require.NoError(t, err)

	message := []byte("authenticate this")
	proof, err := Prove(grp, kp.Private, kp.Public, message, src)
	require.NoError(t, err)

	require.NoError(t, VerifyProof(grp, kp.Public, message, proof))
	require.Error(t, VerifyProof(grp, kp.Public, []byte("different message"), proof))
}

func TestDSASignVerify(t *testing.T) {
	src := rand.Deterministic([32]byte{33})

	grp, err := NewSafePrimeGroup(48, src)
	require.NoError(t, err)

	kp, err := GenerateDSAKeyPair(grp, src)
	require.NoError(t, err)

	digest := []byte{0xde, 0xad, 0xbe, 0xef}
	sig, err := kp.Sign(digest, src)
	require.NoError(t, err)

	require.NoError(t, Verify(grp, kp.Public, digest, sig))

	tamperedDigest := []byte{0xde, 0xad, 0xbe, 0xee}
	require.Error(t, Verify(grp, kp.Public, tamperedDigest, sig))
}
