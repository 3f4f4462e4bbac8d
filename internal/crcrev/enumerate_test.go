package crcrev

import (
	"testing"

	"crcrev/internal/gf2"
)

func polyFromBits(bits ...int) gf2.Poly {
	p := gf2.Zero()
	for _, b := range bits {
		p.AddTo(gf2.Monomial(b))
	}
	return p
}

func containsPoly(list []gf2.Poly, p gf2.Poly) bool {
	for _, q := range list {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

func TestFindProdCombSingleFactorPowers(t *testing.T) {
	x := polyFromBits(1)
	factors := []gf2.FactorPower{{Poly: x, Mult: 8}}
	got := findProdComb(8, factors)
	if len(got) != 1 {
		t.Fatalf("findProdComb() = %d entries, want 1: %v", len(got), got)
	}
	want := polyFromBits(8)
	if !got[0].Equal(want) {
		t.Errorf("findProdComb()[0] = %s, want %s", got[0], want)
	}
}

func TestFindProdCombTwoFactors(t *testing.T) {
	x := polyFromBits(1)
	xPlus1 := polyFromBits(1, 0)
	factors := []gf2.FactorPower{{Poly: x, Mult: 2}, {Poly: xPlus1, Mult: 2}}
	got := findProdComb(2, factors)

	want := []gf2.Poly{
		polyFromBits(2),    // X^2
		polyFromBits(2, 1), // X^2+X
		polyFromBits(2, 0), // X^2+1
	}
	if len(got) != len(want) {
		t.Fatalf("findProdComb() = %d entries, want %d: %v", len(got), len(want), got)
	}
	for _, w := range want {
		if !containsPoly(got, w) {
			t.Errorf("findProdComb() missing %s", w)
		}
	}
}

func TestFindProdCombEmptyFactorsYieldsNothingBelowWidth(t *testing.T) {
	got := findProdComb(4, nil)
	if len(got) != 0 {
		t.Errorf("findProdComb(4, nil) = %v, want empty", got)
	}
}
