package crcrev

import (
	"testing"

	"crcrev/internal/gf2"
)

func TestFindPolyHullGcdsNoneTaggedCarriers(t *testing.T) {
	g := polyFromBits(2, 1, 0) // X^2+X+1, irreducible over GF(2)
	a := gf2.Mul(g, polyFromBits(1, 0))
	b := gf2.Mul(g, polyFromBits(1))

	carriers := []carrier{
		{Poly: a, Tag: noneTag()},
		{Poly: b, Tag: noneTag()},
	}
	deferred, hull := findPolyHull(nil, carriers, 2)
	if len(deferred) != 0 {
		t.Fatalf("deferred = %v, want empty", deferred)
	}
	if !hull.Equal(g) {
		t.Errorf("findPolyHull() hull = %s, want %s", hull, g)
	}
}

func TestFindPolyHullZeroCollapsesToOne(t *testing.T) {
	carriers := []carrier{{Poly: gf2.Zero(), Tag: noneTag()}}
	_, hull := findPolyHull(nil, carriers, 4)
	if !hull.Equal(gf2.One()) {
		t.Errorf("findPolyHull() hull = %s, want 1", hull)
	}
}

func TestFindPolyHullPairwiseCancellation(t *testing.T) {
	// Two carriers differing only by an unknown init contribution at
	// distinct byte offsets: P = multiple_of_G + init*X^(8d). Combining
	// fP*Q + fQ*P with weights built from each tag's exponent must
	// still land on a multiple of G regardless of init's actual value.
	g := polyFromBits(3, 1, 0) // X^3+X+1, irreducible
	initVal := polyFromBits(4, 2)

	base1 := gf2.Mul(g, polyFromBits(2, 0))
	base2 := gf2.Mul(g, polyFromBits(1))

	w1 := gf2.Monomial(8 * 1)
	w2 := gf2.Monomial(8 * 2)
	p := gf2.Add(base1, gf2.Mul(initVal, w1))
	q := gf2.Add(base2, gf2.Mul(initVal, w2))

	carriers := []carrier{
		{Poly: p, Tag: singleTag(1)},
		{Poly: q, Tag: singleTag(2)},
	}
	_, hull := findPolyHull(nil, carriers, 3)
	if hull.Deg() <= 0 {
		t.Fatalf("findPolyHull() produced degenerate hull %s", hull)
	}
	if !gf2.Rem(hull, g).IsZero() {
		t.Errorf("findPolyHull() hull %s is not a multiple of %s", hull, g)
	}
}
