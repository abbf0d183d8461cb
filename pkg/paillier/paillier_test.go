package paillier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultfold/bignum/pkg/bignum"
	"github.com/vaultfold/bignum/pkg/bignum/rand"
)

func encodeInt(v int64) []byte {
	return bignum.NewFromInt64(v).Bytes()
}

func decodeInt(t *testing.T, b []byte) int64 {
	t.Helper()
	z := bignum.New()
	require.NoError(t, z.SetBytes(b))
	v, ok := z.Int64()
	require.True(t, ok)
	return v
}

func TestGenerateEncryptDecrypt(t *testing.T) {
	src := rand.Deterministic([32]byte{10})

	p, err := Generate(128, src)
	require.NoError(t, err)
	require.True(t, p.HasPrivateKey())
	defer p.Close()

	ct, err := p.Encrypt(encodeInt(42), src)
	require.NoError(t, err)

	pt, err := p.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, int64(42), decodeInt(t, pt))
}

func TestHomomorphicAdd(t *testing.T) {
	src := rand.Deterministic([32]byte{11})

	p, err := Generate(128, src)
	require.NoError(t, err)
	defer p.Close()

	c1, err := p.Encrypt(encodeInt(7), src)
	require.NoError(t, err)
	c2, err := p.Encrypt(encodeInt(35), src)
	require.NoError(t, err)

	sum, err := p.AddCiphers(c1, c2)
	require.NoError(t, err)

	pt, err := p.Decrypt(sum)
	require.NoError(t, err)
	require.Equal(t, int64(42), decodeInt(t, pt))
}

func TestHomomorphicMulScalar(t *testing.T) {
	src := rand.Deterministic([32]byte{12})

	p, err := Generate(128, src)
	require.NoError(t, err)
	defer p.Close()

	ct, err := p.Encrypt(encodeInt(6), src)
	require.NoError(t, err)

	scaled, err := p.MulScalar(ct, encodeInt(7))
	require.NoError(t, err)

	pt, err := p.Decrypt(scaled)
	require.NoError(t, err)
	require.Equal(t, int64(42), decodeInt(t, pt))
}

func TestVerifyCipher(t *testing.T) {
	src := rand.Deterministic([32]byte{13})

	p, err := Generate(128, src)
	require.NoError(t, err)
	defer p.Close()

	ct, err := p.Encrypt(encodeInt(1), src)
	require.NoError(t, err)
	require.NoError(t, p.VerifyCipher(ct))
}

func TestCloseRevokesPrivateKey(t *testing.T) {
	src := rand.Deterministic([32]byte{14})

	p, err := Generate(128, src)
	require.NoError(t, err)

	ct, err := p.Encrypt(encodeInt(5), src)
	require.NoError(t, err)

	p.Close()
	require.False(t, p.HasPrivateKey())

	_, err = p.Decrypt(ct)
	require.ErrorIs(t, err, ErrClosed)
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	src := rand.Deterministic([32]byte{15})

	p, err := Generate(128, src)
	require.NoError(t, err)
	defer p.Close()

	data, err := p.Serialize()
	require.NoError(t, err)

	p2, err := Deserialize(data)
	require.NoError(t, err)
	defer p2.Close()

	require.True(t, p2.HasPrivateKey())
	require.Equal(t, p.GetN(), p2.GetN())

	ct, err := p.Encrypt(encodeInt(99), src)
	require.NoError(t, err)
	pt, err := p2.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, int64(99), decodeInt(t, pt))
}

func TestFromPublicKeyCannotDecrypt(t *testing.T) {
	src := rand.Deterministic([32]byte{16})

	p, err := Generate(128, src)
	require.NoError(t, err)
	defer p.Close()

	pub, err := FromPublicKey(p.GetN())
	require.NoError(t, err)
	require.False(t, pub.HasPrivateKey())

	_, err = pub.Decrypt([]byte{1})
	require.ErrorIs(t, err, ErrNoPrivateKey)
}
