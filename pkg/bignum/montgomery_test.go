package bignum

import "testing"

func TestMontgomeryRoundTrip(t *testing.T) {
	n := mustParse(t, "1000000000000000000000000000057")
	ctx, err := NewMontgomeryContext(n)
	if err != nil {
		t.Fatalf("NewMontgomeryContext: %v", err)
	}

	x := mustParse(t, "123456789012345678901234567890")

	mx := New()
	if err := ctx.ToMontgomery(mx, x); err != nil {
		t.Fatalf("ToMontgomery: %v", err)
	}
	back := New()
	if err := ctx.FromMontgomery(back, mx); err != nil {
		t.Fatalf("FromMontgomery: %v", err)
	}
	if Cmp(back, x) != 0 {
		t.Errorf("Montgomery round trip failed: got %v, want %v", back, x)
	}
}

func TestMontgomeryMulAgreesWithModMul(t *testing.T) {
	n := mustParse(t, "1000000000000000000000000000057")
	ctx, err := NewMontgomeryContext(n)
	if err != nil {
		t.Fatalf("NewMontgomeryContext: %v", err)
	}

	x := mustParse(t, "987654321098765432109876543210")
	y := mustParse(t, "112233445566778899001122334455")

	mx := New()
	if err := ctx.ToMontgomery(mx, x); err != nil {
		t.Fatalf("ToMontgomery: %v", err)
	}
	my := New()
	if err := ctx.ToMontgomery(my, y); err != nil {
		t.Fatalf("ToMontgomery: %v", err)
	}

	mp := New()
	if err := ctx.Mul(mp, mx, my); err != nil {
		t.Fatalf("Mul: %v", err)
	}
	got := New()
	if err := ctx.FromMontgomery(got, mp); err != nil {
		t.Fatalf("FromMontgomery: %v", err)
	}

	want := New()
	if _, err := want.Mul(x, y); err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if err := want.Mod(want, n); err != nil {
		t.Fatalf("Mod: %v", err)
	}

	if Cmp(got, want) != 0 {
		t.Errorf("Montgomery Mul disagrees with plain Mul+Mod: got %v, want %v", got, want)
	}
}
