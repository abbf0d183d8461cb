package bignum

import "testing"

func TestCondAssignTrue(t *testing.T) {
	z := NewFromInt64(10)
	y := NewFromInt64(20)
	if err := z.CondAssign(1, y); err != nil {
		t.Fatalf("CondAssign: %v", err)
	}
	if Cmp(z, y) != 0 {
		t.Errorf("CondAssign(1, y) should set z = y")
	}
}

func TestCondAssignFalse(t *testing.T) {
	z := NewFromInt64(10)
	orig := z.Clone()
	y := NewFromInt64(20)
	if err := z.CondAssign(0, y); err != nil {
		t.Fatalf("CondAssign: %v", err)
	}
	if Cmp(z, orig) != 0 {
		t.Errorf("CondAssign(0, y) should leave z unchanged")
	}
}

func TestCondSwap(t *testing.T) {
	a := NewFromInt64(111)
	b := NewFromInt64(222)

	aCopy := a.Clone()
	bCopy := b.Clone()

	if err := a.CondSwap(1, b); err != nil {
		t.Fatalf("CondSwap: %v", err)
	}
	if Cmp(a, bCopy) != 0 || Cmp(b, aCopy) != 0 {
		t.Errorf("CondSwap(1, ...) should swap values")
	}
}

func TestCondSwapNoOp(t *testing.T) {
	a := NewFromInt64(111)
	b := NewFromInt64(222)

	aCopy := a.Clone()
	bCopy := b.Clone()

	if err := a.CondSwap(0, b); err != nil {
		t.Fatalf("CondSwap: %v", err)
	}
	if Cmp(a, aCopy) != 0 || Cmp(b, bCopy) != 0 {
		t.Errorf("CondSwap(0, ...) should leave both values unchanged")
	}
}

// TestCondAssignTouchesEveryLimb checks that CondAssign grows z to at least
// y's limb count even when cond is 0, so that its masked loop runs over
// every limb of y regardless of the condition bit.
func TestCondAssignTouchesEveryLimb(t *testing.T) {
	z := NewFromInt64(1)
	y := mustParse(t, "123456789012345678901234567890123456789012345678901234567890")

	if err := z.CondAssign(0, y); err != nil {
		t.Fatalf("CondAssign: %v", err)
	}
	if len(z.limbs) < len(y.limbs) {
		t.Errorf("CondAssign(0, y) did not grow z to y's limb width: len(z.limbs)=%d, len(y.limbs)=%d", len(z.limbs), len(y.limbs))
	}
}
