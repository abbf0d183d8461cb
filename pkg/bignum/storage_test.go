package bignum

import "testing"

func TestSetCopiesIndependently(t *testing.T) {
	y := mustParse(t, "123456789012345678901234567890")
	z := New()
	if err := z.Set(y); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if Cmp(z, y) != 0 {
		t.Fatalf("Set did not copy value")
	}
	if _, err := y.AddInt64(y, 1); err != nil {
		t.Fatalf("AddInt64: %v", err)
	}
	if Cmp(z, y) == 0 {
		t.Error("Set should produce an independent copy, not an alias")
	}
}

func TestSwap(t *testing.T) {
	a := NewFromInt64(1)
	b := NewFromInt64(2)
	a.Swap(b)
	av, _ := a.Int64()
	bv, _ := b.Int64()
	if av != 2 || bv != 1 {
		t.Errorf("Swap: a=%d b=%d, want a=2 b=1", av, bv)
	}
}

func TestFreeZeroesAndResets(t *testing.T) {
	z := mustParse(t, "123456789012345678901234567890")
	z.Free()
	if !z.IsZero() {
		t.Error("Free should reset z to zero")
	}
}

func TestGrowShrink(t *testing.T) {
	z := NewFromInt64(1)
	if err := z.Grow(8); err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if len(z.limbs) < 8 {
		t.Errorf("Grow(8) left len(limbs)=%d, want >= 8", len(z.limbs))
	}
	v, ok := z.Int64()
	if !ok || v != 1 {
		t.Errorf("Grow should not change value: got %d", v)
	}
	if err := z.Shrink(1); err != nil {
		t.Fatalf("Shrink: %v", err)
	}
	v, ok = z.Int64()
	if !ok || v != 1 {
		t.Errorf("Shrink should not change value: got %d", v)
	}
}
