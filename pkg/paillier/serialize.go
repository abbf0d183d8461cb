package paillier

import "encoding/binary"

const (
	tagPublic  = 0
	tagPrivate = 1
)

// Serialize encodes p to bytes for storage or transmission. The encoding
// always carries the public modulus N, plus the factors p and q when p
// holds a private key.
func (p *Paillier) Serialize() ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	var out []byte
	if p.HasPrivateKey() {
		out = append(out, tagPrivate)
	} else {
		out = append(out, tagPublic)
	}
	out = appendField(out, p.n.Bytes())
	if p.HasPrivateKey() {
		if p.factors[0] == nil || p.factors[1] == nil {
			return nil, ErrInvalidKey
		}
		out = appendField(out, p.factors[0].Bytes())
		out = appendField(out, p.factors[1].Bytes())
	}
	return out, nil
}

func appendField(dst []byte, field []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(field)))
	dst = append(dst, lenBuf[:]...)
	dst = append(dst, field...)
	return dst
}

func readField(data []byte) (field, rest []byte, ok bool) {
	if len(data) < 4 {
		return nil, nil, false
	}
	n := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint64(len(data)) < uint64(n) {
		return nil, nil, false
	}
	return data[:n], data[n:], true
}

// Deserialize decodes a Paillier instance previously produced by Serialize.
func Deserialize(data []byte) (*Paillier, error) {
	if len(data) < 1 {
		return nil, ErrMalformedData
	}
	tag := data[0]
	data = data[1:]

	nBytes, data, ok := readField(data)
	if !ok {
		return nil, ErrMalformedData
	}

	switch tag {
	case tagPublic:
		return FromPublicKey(nBytes)
	case tagPrivate:
		pBytes, data, ok := readField(data)
		if !ok {
			return nil, ErrMalformedData
		}
		qBytes, _, ok := readField(data)
		if !ok {
			return nil, ErrMalformedData
		}
		return FromPrivateKey(nBytes, pBytes, qBytes)
	default:
		return nil, ErrMalformedData
	}
}
