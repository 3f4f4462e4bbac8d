package gf2

// Gcd returns the monic (in 𝔽₂[X] every nonzero polynomial is already
// "monic" in the sense of having leading coefficient 1) greatest common
// divisor of a and b via the Euclidean algorithm.
func Gcd(a, b Poly) Poly {
	a, b = a.Clone(), b.Clone()
	for !b.IsZero() {
		a, b = b, Rem(a, b)
	}
	return a
}

// GcdTo sets p = gcd(p, q) in place.
func (p *Poly) GcdTo(q Poly) {
	*p = Gcd(*p, q)
}

// ExtGCD computes g = gcd(a, b) together with x, y such that
// a*x + b*y = g (the Bézout identity), using the extended Euclidean
// algorithm. This is the primitive the init solver's generalised CRT
// merge step builds on: merging two PrefactorMod solution sets over
// non-coprime moduli needs exactly this Bézout pair.
func ExtGCD(a, b Poly) (g, x, y Poly) {
	oldR, r := a.Clone(), b.Clone()
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()
	for !r.IsZero() {
		q := Div(oldR, r)
		oldR, r = r, Add(oldR, Mul(q, r))
		oldS, s = s, Add(oldS, Mul(q, s))
		oldT, t = t, Add(oldT, Mul(q, t))
	}
	return oldR, oldS, oldT
}

// HighestPowerGCD computes lim_{n->infinity} gcd(a, b^n): the largest
// divisor of a all of whose irreducible factors also divide b. Used by
// the init solver to decide how much of the hull must be swapped out
// when a file's constraint is incompatible with the current modulus.
func HighestPowerGCD(a, b Poly) Poly {
	prev := One()
	cur := Rem(b, a)
	for !cur.Equal(prev) {
		prev = cur
		cur = Sqr(cur)
		cur.GcdTo(a)
	}
	return cur
}
