package crcrev

import "crcrev/internal/gf2"

// memoPower caches X^(8d) mod H across a non-decreasing sequence of d
// values, the pattern every file in a sorted sample list produces:
// each query only needs to multiply the previous representative by
// X^(8*(d-previous d)) rather than recompute a fresh modular power from
// scratch. When the hull tightens mid-solve, updateHull re-reduces the
// cached representative against the new modulus instead of discarding
// it.
type memoPower struct {
	prevPower int
	prevRep   gf2.Poly
	ring      gf2.QuotientRing
	initFac   gf2.Poly
}

func newMemoPower(hull gf2.Poly) *memoPower {
	ring := gf2.NewQuotientRing(hull)
	return &memoPower{prevRep: ring.Rep(gf2.One()), ring: ring}
}

// updatePower advances the cache to X^(8*level) mod H and returns it.
// level must be >= every level previously passed in; a query that goes
// backwards is a defect in the pipeline's ordering and panics.
func (m *memoPower) updatePower(level int) gf2.Poly {
	if level < m.prevPower {
		panic("internal error: non-ascending memoPower query")
	}
	x := m.ring.Rep(gf2.Monomial(1))
	diff := m.ring.Pow(x, 8*(level-m.prevPower))
	m.prevPower = level
	m.prevRep = m.ring.Mul(m.prevRep, diff)
	return m.prevRep
}

// updateInitFac evaluates tag's symbolic weight mod the ring's current
// modulus, caches it in initFac for the caller, and returns it.
func (m *memoPower) updateInitFac(tag initPlace) gf2.Poly {
	switch tag.kind {
	case kindNone:
		m.initFac = gf2.Zero()
	case kindSingle:
		m.initFac = m.updatePower(tag.d1)
	case kindPair:
		lo, hi := tag.d1, tag.d2
		a := m.updatePower(lo)
		b := m.updatePower(hi)
		m.initFac = gf2.Add(a, b)
	default:
		panic("internal error: unknown init tag kind")
	}
	return m.initFac
}

// updateHull re-pins the ring to a tighter modulus, re-reducing the
// cached representative rather than losing the work done so far.
func (m *memoPower) updateHull(hull gf2.Poly) {
	m.ring = gf2.NewQuotientRing(hull)
	m.prevRep = m.ring.Rep(m.prevRep)
	m.initFac = m.ring.Rep(m.initFac)
}
