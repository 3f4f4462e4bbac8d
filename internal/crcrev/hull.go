package crcrev

import "crcrev/internal/gf2"

// findPolyHull narrows a multiple of the true generator polynomial
// down from the working carriers: every None-tagged carrier already is
// such a multiple on its own and is folded straight into the GCD,
// while Single/Pair-tagged carriers still carry an unknown init
// contribution and must first be combined in adjacent pairs so that
// contribution cancels out.
//
// For two carriers P (tag p) and Q (tag q), let m be the smallest
// exponent appearing in either tag and fP, fQ the degree-8(d-m)
// weight polynomials built from each tag relative to m. Then
// fP*Q + fQ*P is a polynomial multiple of the generator regardless of
// the unknown init value, because the init terms that made P and Q
// merely multiples-plus-an-unknown cancel identically.
//
// Once a hull candidate is in hand, a degree sieve removes every
// irreducible factor whose degree exceeds width (the product of
// X^(2^d)+X for d in 1..width is exactly the set of irreducibles of
// degree dividing some value <= width), and any trailing zero
// coefficients are trimmed, since a true generator always has a
// nonzero constant term.
func findPolyHull(knownPoly *gf2.Poly, carriers []carrier, width int) ([]carrier, gf2.Poly) {
	hull := gf2.Zero()
	if knownPoly != nil {
		hull = knownPoly.Clone()
	}

	var deferred []carrier
	for _, c := range carriers {
		if c.Tag.kind == kindNone {
			hull.GcdTo(c.Poly)
		} else {
			deferred = append(deferred, c)
		}
	}

	for i := 0; i+1 < len(deferred); i++ {
		p, q := deferred[i], deferred[i+1]
		exps := append(append([]int{}, p.Tag.exponents()...), q.Tag.exponents()...)
		m := minInts(exps)
		fP := weightPoly(p.Tag, m)
		fQ := weightPoly(q.Tag, m)
		term := gf2.Mul(fP, q.Poly)
		term.AddTo(gf2.Mul(fQ, p.Poly))
		hull.GcdTo(term)
	}

	if hull.IsZero() {
		return deferred, gf2.One()
	}

	ring := gf2.NewQuotientRing(hull)
	x := ring.Rep(gf2.Monomial(1))
	cur := x
	prod := ring.Rep(gf2.One())
	for d := 1; d <= width; d++ {
		cur = ring.Sqr(cur)
		prod = ring.Mul(prod, gf2.Add(cur, x))
	}
	hull = gf2.Gcd(hull, prod)

	for i := 0; i <= hull.Deg(); i++ {
		if hull.Bit(i) {
			hull = gf2.Shr(hull, i)
			break
		}
	}

	return deferred, hull
}
