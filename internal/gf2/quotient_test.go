package gf2

import "testing"

func TestQuotientRingPow(t *testing.T) {
	h := Add(Add(Monomial(4), Monomial(1)), One())
	r := NewQuotientRing(h)
	x := Monomial(1)
	got := r.Pow(x, 4)
	want := r.Rep(Monomial(4))
	if !got.Equal(want) {
		t.Errorf("Pow(X,4) mod H = %v, want %v", got, want)
	}
}

func TestQuotientRingModulusPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewQuotientRing(0) did not panic")
		}
	}()
	NewQuotientRing(Zero())
}

func TestQuotientRingMulReducesMod(t *testing.T) {
	h := Add(Monomial(8), One())
	r := NewQuotientRing(h)
	a := Monomial(5)
	b := Monomial(5)
	got := r.Mul(a, b)
	want := r.Rep(Monomial(10))
	if !got.Equal(want) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}
