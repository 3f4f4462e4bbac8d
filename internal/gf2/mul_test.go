package gf2

import (
	"testing"
	"testing/quick"
)

func TestMulSmall(t *testing.T) {
	// (X+1)*(X+1) = X^2+1 over 𝔽₂[X] (the cross term 2X vanishes).
	a := Add(Monomial(1), One())
	got := Mul(a, a)
	want := Add(Monomial(2), One())
	if !got.Equal(want) {
		t.Errorf("Mul((X+1),(X+1)) = %v, want %v", got, want)
	}
}

func TestMulIdentity(t *testing.T) {
	a := Add(Monomial(9), Monomial(3))
	if got := Mul(a, One()); !got.Equal(a) {
		t.Errorf("Mul(a, 1) = %v, want %v", got, a)
	}
}

func TestSqrMatchesMul(t *testing.T) {
	a := Add(Add(Monomial(40), Monomial(17)), One())
	if got, want := Sqr(a), Mul(a, a); !got.Equal(want) {
		t.Errorf("Sqr(a) = %v, want %v", got, want)
	}
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	// Force both multiplicands above the Karatsuba threshold.
	a := Monomial(wordBits * (karatsubaThreshold + 5))
	a.AddTo(One())
	b := Monomial(wordBits * (karatsubaThreshold + 3))
	b.AddTo(Monomial(2))
	got := Poly{w: karatsubaWords(a.w, b.w)}.trim()
	want := Poly{w: mulWords(a.w, b.w)}.trim()
	if !got.Equal(want) {
		t.Errorf("karatsubaWords result differs from mulWords")
	}
}

func TestQuickMulCommutative(t *testing.T) {
	f := func(a, b, c, d uint64) bool {
		pa := Poly{w: []uint64{a, b}}.trim()
		pb := Poly{w: []uint64{c, d}}.trim()
		return Mul(pa, pb).Equal(Mul(pb, pa))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickMulDistributesOverAdd(t *testing.T) {
	f := func(a, b, c uint64) bool {
		pa := Poly{w: []uint64{a}}.trim()
		pb := Poly{w: []uint64{b}}.trim()
		pc := Poly{w: []uint64{c}}.trim()
		lhs := Mul(pa, Add(pb, pc))
		rhs := Add(Mul(pa, pb), Mul(pa, pc))
		return lhs.Equal(rhs)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
