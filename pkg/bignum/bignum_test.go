package bignum

import "testing"

func TestNewIsZero(t *testing.T) {
	z := New()
	if !z.IsZero() {
		t.Error("New() should be zero")
	}
	if z.Sign() != 0 {
		t.Errorf("New().Sign() = %d, want 0", z.Sign())
	}
}

func TestNewFromInt64Sign(t *testing.T) {
	cases := []struct {
		v    int64
		sign int
	}{
		{0, 0},
		{42, 1},
		{-42, -1},
	}
	for _, c := range cases {
		z := NewFromInt64(c.v)
		if got := z.Sign(); got != c.sign {
			t.Errorf("NewFromInt64(%d).Sign() = %d, want %d", c.v, got, c.sign)
		}
		got, ok := z.Int64()
		if !ok || got != c.v {
			t.Errorf("NewFromInt64(%d).Int64() = (%d, %v), want (%d, true)", c.v, got, ok, c.v)
		}
	}
}

func TestClone(t *testing.T) {
	x := NewFromInt64(12345)
	y := x.Clone()
	if Cmp(x, y) != 0 {
		t.Fatalf("Clone() not equal to original")
	}
	if _, err := y.AddInt64(y, 1); err != nil {
		t.Fatalf("AddInt64: %v", err)
	}
	if Cmp(x, y) == 0 {
		t.Error("mutating the clone mutated the original")
	}
}
