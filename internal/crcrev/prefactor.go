package crcrev

import "crcrev/internal/gf2"

// prefactorMod represents a solution set for the init register in
// 𝔽₂[X]/(H): the congruence class V + (H/U)*k for every k of degree
// less than deg(U). U=1 means init is fully pinned down to V; U=H
// means nothing at all is known yet.
type prefactorMod struct {
	unknown  gf2.Poly // U
	possible gf2.Poly // V
	hull     gf2.Poly // H
}

// emptyPrefactor is the unsatisfiable solution set, returned whenever a
// file's constraint turns out incompatible with everything seen so
// far.
func emptyPrefactor() prefactorMod {
	return prefactorMod{unknown: gf2.One(), possible: gf2.Zero(), hull: gf2.One()}
}

func newInitPrefactor(init *gf2.Poly, hull gf2.Poly) prefactorMod {
	if init == nil {
		return prefactorMod{unknown: hull.Clone(), possible: gf2.Zero(), hull: hull.Clone()}
	}
	return prefactorMod{unknown: gf2.One(), possible: init.Clone(), hull: hull.Clone()}
}

// valid returns H/U, the modulus under which possible is meaningful.
func (pm prefactorMod) valid() gf2.Poly {
	return gf2.Div(pm.hull, pm.unknown)
}

// updateHull re-pins pm to a (possibly tighter) hull, shrinking U and
// re-reducing V accordingly. A no-op when the hull hasn't changed.
func (pm *prefactorMod) updateHull(hull gf2.Poly) {
	if pm.hull.Equal(hull) {
		return
	}
	pm.hull = hull.Clone()
	pm.unknown.GcdTo(hull)
	pm.possible = gf2.Rem(pm.possible, pm.valid())
}

// newFilePrefactor derives the constraint a single file's working
// polynomial places on the init register, tightening the hull in
// place when the file's constraint and the current init cache turn
// out to share fewer common factors than the hull assumed. Returns ok
// = false when the file is fundamentally incompatible (the tightened
// hull collapses to a unit or below).
func newFilePrefactor(file gf2.Poly, mp *memoPower, hull gf2.Poly) (prefactorMod, gf2.Poly, bool) {
	file = gf2.Rem(file, hull)
	fileFloat := gf2.Gcd(file, hull)
	powerFloat := gf2.Gcd(mp.initFac, hull)
	commonFloat := gf2.Gcd(powerFloat, fileFloat)

	discrepancy := gf2.Div(powerFloat, commonFloat)
	if !discrepancy.Equal(gf2.One()) {
		hullPart := gf2.HighestPowerGCD(hull, discrepancy)
		filePart := gf2.Gcd(fileFloat, hullPart)
		hull = gf2.Div(hull, hullPart)
		hull = gf2.Mul(hull, filePart)
		if hull.Deg() <= 0 {
			return prefactorMod{}, hull, false
		}
		mp.updateHull(hull)
		file = gf2.Rem(file, hull)
		fileFloat = gf2.Gcd(file, hull)
		powerFloat = gf2.Gcd(mp.initFac, hull)
		commonFloat = gf2.Gcd(powerFloat, fileFloat)
	}

	possible := inverseFixed(mp.initFac, file, commonFloat, hull)
	return prefactorMod{unknown: commonFloat, possible: possible, hull: hull.Clone()}, hull, true
}

// inverseFixed solves a*k == b (mod hull/common) for k, dividing a, b
// and the modulus by their shared factor first so the remaining
// modular inverse is taken against a coprime pair.
func inverseFixed(a, b, common, hull gf2.Poly) gf2.Poly {
	module := gf2.Div(hull, common)
	if module.Equal(gf2.One()) {
		return gf2.Zero()
	}
	a = gf2.Rem(gf2.Div(a, common), module)
	b = gf2.Rem(gf2.Div(b, common), module)
	ring := gf2.NewQuotientRing(module)
	aInv := modInverse(a, module)
	return ring.Mul(aInv, b)
}

func modInverse(a, module gf2.Poly) gf2.Poly {
	_, x, _ := gf2.ExtGCD(a, module)
	return gf2.Rem(x, module)
}

// adjustCompatibility narrows the hull so that two solution sets'
// overlapping moduli are consistent, returning the (possibly
// re-pinned) pair and the narrowed hull.
func adjustCompatibility(a, b prefactorMod, hull gf2.Poly) (prefactorMod, prefactorMod, gf2.Poly) {
	commonValid := gf2.Gcd(a.valid(), b.valid())
	sum := gf2.Add(a.possible, b.possible)
	actualValid := gf2.Gcd(sum, commonValid)

	hull = gf2.Div(hull, commonValid)
	hull = gf2.Mul(hull, actualValid)
	if hull.Deg() <= 0 {
		return a, b, hull
	}
	a.updateHull(hull)
	b.updateHull(hull)
	return a, b, hull
}

// merge combines two independently derived solution sets into one via
// a generalized Chinese Remainder Theorem: a Bézout pair for the two
// moduli's GCD lets the merged residue be built even when the moduli
// are not coprime, as long as they agree on their overlap (checked and
// enforced by adjustCompatibility first).
func (pm prefactorMod) merge(other prefactorMod, hull gf2.Poly) (prefactorMod, gf2.Poly, bool) {
	pm.updateHull(hull)
	other.updateHull(hull)
	pm, other, hull = adjustCompatibility(pm, other, hull)
	if hull.Deg() <= 0 {
		return prefactorMod{}, hull, false
	}

	selfValid := pm.valid()
	otherValid := other.valid()
	g, a, b := gf2.ExtGCD(selfValid, otherValid)

	term1 := gf2.Mul(gf2.Mul(a, selfValid), other.possible)
	term2 := gf2.Mul(gf2.Mul(b, otherValid), pm.possible)
	term1.AddTo(term2)
	possible := gf2.Div(term1, g)

	merged := prefactorMod{
		unknown:  gf2.Gcd(pm.unknown, other.unknown),
		possible: possible,
		hull:     hull.Clone(),
	}
	return merged, hull, true
}

// uintToPoly converts a small non-negative integer to the polynomial
// with the same bit pattern, used to enumerate the 2^deg(U) candidate
// offsets a prefactorMod still leaves open.
func uintToPoly(v uint64) gf2.Poly {
	p := gf2.Zero()
	for i := 0; i < 64; i++ {
		if v&(1<<uint(i)) != 0 {
			p.AddTo(gf2.Monomial(i))
		}
	}
	return p
}

// initXorout is one (init, xorout) candidate pair emitted for a single
// degree-width generator polynomial.
type initXorout struct {
	Init   gf2.Poly
	Xorout gf2.Poly
}

// iterInits enumerates every init/xorout pair consistent with pm under
// the candidate generator redPoly (full, degree exactly width), paired
// against the carrier still holding the unresolved xorout contribution.
func iterInits(pm prefactorMod, redPoly gf2.Poly, xorCarrier carrier) []initXorout {
	redUnknown := gf2.Gcd(pm.unknown, redPoly)
	redValid := gf2.Div(redPoly, redUnknown)
	redInit := gf2.Rem(pm.possible, redValid)

	ring := gf2.NewQuotientRing(redPoly)
	modValid := ring.Rep(redValid)
	modInit := ring.Rep(redInit)
	modXorout := ring.Rep(xorCarrier.Poly)
	x := ring.Rep(gf2.Monomial(1))

	var modPower gf2.Poly
	switch xorCarrier.Tag.kind {
	case kindNone:
		modPower = ring.Rep(gf2.Zero())
	case kindSingle:
		modPower = ring.Pow(x, 8*xorCarrier.Tag.d1)
	default:
		panic("internal error: double tag reaching iterInits")
	}

	deg := redUnknown.Deg()
	if deg < 0 {
		deg = 0
	}
	count := uint64(1) << uint(deg)

	out := make([]initXorout, 0, count)
	for k := uint64(0); k < count; k++ {
		curInit := ring.Mul(ring.Rep(uintToPoly(k)), modValid)
		curInit = gf2.Add(curInit, modInit)
		curXorout := ring.Mul(modPower, curInit)
		curXorout = gf2.Add(curXorout, modXorout)
		out = append(out, initXorout{Init: curInit, Xorout: curXorout})
	}
	return out
}
