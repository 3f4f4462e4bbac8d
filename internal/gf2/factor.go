package gf2

import (
	"math/rand"
	"time"
)

// FactorPower is one irreducible factor and its multiplicity in a
// polynomial's factorization.
type FactorPower struct {
	Poly Poly
	Mult int
}

// Factor decomposes f into its irreducible factors over 𝔽₂[X]. f must be
// nonzero; the zero polynomial has no factorization. Constant 1 factors
// to an empty slice.
//
// The polynomials Factor is ever asked to decompose here are bounded by
// a CRC width (at most 128 bits before the poly-hull narrows them
// further), so the straightforward approach below — characteristic-2
// squarefree decomposition, then distinct-degree factorization, then
// Cantor-Zassenhaus equal-degree splitting using the trace map in place
// of the odd-characteristic Legendre-symbol split — is well within its
// working range; it is not tuned for million-bit inputs the way Mul is.
func Factor(f Poly) []FactorPower {
	if f.IsZero() || f.Deg() <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var out []FactorPower
	for _, sf := range squarefreeDecomposition(f) {
		for _, dd := range distinctDegreeFactor(sf.Poly) {
			for _, irr := range equalDegreeFactor(dd.Poly, dd.Mult, rng) {
				out = append(out, FactorPower{Poly: irr, Mult: sf.Mult})
			}
		}
	}
	return out
}

// squarefreeDecomposition returns {g_i, i} pairs such that f = prod g_i^i
// and every g_i is squarefree, following the classical char-p algorithm
// (Gathen & Gerhard, "Modern Computer Algebra", adapted to p=2 where a
// zero derivative means the whole remaining cofactor is a perfect
// square rather than a general p-th power).
func squarefreeDecomposition(f Poly) []FactorPower {
	var result []FactorPower
	c := Gcd(f, derivative(f))
	w := Div(f, c)
	i := 1
	for w.Deg() > 0 {
		y := Gcd(w, c)
		fac := Div(w, y)
		if fac.Deg() > 0 {
			result = append(result, FactorPower{Poly: fac, Mult: i})
		}
		w = y
		c = Div(c, y)
		i++
	}
	if c.Deg() > 0 {
		root := sqrtChar2(c)
		for _, sub := range squarefreeDecomposition(root) {
			result = append(result, FactorPower{Poly: sub.Poly, Mult: sub.Mult * 2})
		}
	}
	return result
}

// derivative returns the formal derivative of p over 𝔽₂[X]: the
// coefficient of X^(i-1) in p' is the coefficient of X^i in p when i is
// odd, and 0 when i is even (since i mod 2 is the derivative's integer
// coefficient reduced mod 2).
func derivative(p Poly) Poly {
	out := Poly{w: make([]uint64, len(p.w)+1)}
	for i := 1; i <= p.Deg(); i += 2 {
		if p.Bit(i) {
			word, off := (i-1)/wordBits, uint((i-1)%wordBits)
			out.w[word] |= 1 << off
		}
	}
	return out.trim()
}

// sqrtChar2 returns g such that g*g == p. p must have nonzero
// coefficients only at even degrees, which holds for every zero-derivative
// polynomial over 𝔽₂[X] (squaring in characteristic 2 spreads each
// coefficient of g from position i to position 2i with no cross terms).
func sqrtChar2(p Poly) Poly {
	out := Poly{w: make([]uint64, len(p.w)/2+2)}
	for i := 0; i <= p.Deg(); i += 2 {
		if p.Bit(i) {
			j := i / 2
			word, off := j/wordBits, uint(j%wordBits)
			out.w[word] |= 1 << off
		}
	}
	return out.trim()
}

// degreeBlock pairs a product of irreducible factors with the shared
// degree of every factor in it (distinct-degree factorization's output
// unit) and, reused in squarefreeDecomposition's caller, the iteration's
// multiplicity — equalDegreeFactor only reads Mult as the target degree.
type degreeBlock struct {
	Poly Poly
	Mult int
}

// distinctDegreeFactor splits a squarefree f into groups, one per degree
// d, each group being the product of all of f's irreducible factors of
// degree d. It works by computing gcd(f, X^(2^d)+X): the polynomial
// X^(2^d)+X is exactly the product of all irreducibles whose degree
// divides d, so successive gcds peel off one degree at a time.
func distinctDegreeFactor(f Poly) []degreeBlock {
	var result []degreeBlock
	rest := f
	for d := 1; rest.Deg() >= 2*d; d++ {
		ring := NewQuotientRing(rest)
		xpow := ring.Pow(Monomial(1), 1<<uint(d))
		cand := Add(xpow, ring.Rep(Monomial(1)))
		g := Gcd(cand, rest)
		if g.Deg() > 0 {
			result = append(result, degreeBlock{Poly: g, Mult: d})
			rest = Div(rest, g)
		}
	}
	if rest.Deg() > 0 {
		result = append(result, degreeBlock{Poly: rest, Mult: rest.Deg()})
	}
	return result
}

// equalDegreeFactor splits a product of irreducibles, all of the given
// degree d, into the individual irreducible factors via Cantor-Zassenhaus
// with the trace map standing in for the Legendre-symbol split used in
// odd characteristic: over GF(2^d), an element's trace into GF(2) is 0
// for exactly half the field, giving a random splitting polynomial for
// gcd(trace(t), f).
func equalDegreeFactor(f Poly, d int, rng *rand.Rand) []Poly {
	if f.Deg() <= 0 {
		return nil
	}
	if f.Deg() == d {
		return []Poly{f}
	}
	ring := NewQuotientRing(f)
	for {
		t := randomPoly(rng, f.Deg())
		if t.Deg() <= 0 {
			continue
		}
		trace := t.Clone()
		acc := t
		for i := 1; i < d; i++ {
			acc = ring.Sqr(acc)
			trace = Add(trace, acc)
		}
		g := Gcd(trace, f)
		if g.Deg() > 0 && g.Deg() < f.Deg() {
			left := equalDegreeFactor(g, d, rng)
			right := equalDegreeFactor(Div(f, g), d, rng)
			return append(left, right...)
		}
	}
}

func randomPoly(rng *rand.Rand, maxDeg int) Poly {
	n := maxDeg/wordBits + 1
	w := make([]uint64, n)
	for i := range w {
		w[i] = rng.Uint64()
	}
	return Poly{w: w}.trim()
}
