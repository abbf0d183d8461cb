package main

import "github.com/vaultfold/bignum/pkg/bignum"

// bignumInt64ToBytes renders v as a big-endian byte slice via bignum itself,
// so every numeric value the CLI prints goes through the same code path.
func bignumInt64ToBytes(v int64) []byte {
	return bignum.NewFromInt64(v).Bytes()
}

// parseDecimalInt64 parses a decimal string into an int64 using bignum's own
// parser, returning ok=false (and an error) if it doesn't fit in 63 bits.
func parseDecimalInt64(s string, out *int64) (bool, error) {
	z := bignum.New()
	if err := z.SetString(10, s); err != nil {
		return false, err
	}
	v, ok := z.Int64()
	if !ok {
		return false, bignum.ErrBadInput
	}
	*out = v
	return true, nil
}
