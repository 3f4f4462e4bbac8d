package gf2

import "testing"

func reconstructProduct(fs []FactorPower) Poly {
	p := One()
	for _, f := range fs {
		for i := 0; i < f.Mult; i++ {
			p = Mul(p, f.Poly)
		}
	}
	return p
}

func TestFactorReconstructsSquarefreeProduct(t *testing.T) {
	xp1 := Add(Monomial(1), One())                        // X+1
	irr2 := Add(Add(Monomial(2), Monomial(1)), One())      // X^2+X+1
	irr3 := Add(Add(Monomial(3), Monomial(1)), One())      // X^3+X+1
	f := Mul(Mul(xp1, irr2), irr3)

	factors := Factor(f)
	if got := reconstructProduct(factors); !got.Equal(f) {
		t.Errorf("reconstructed product %v != original %v", got, f)
	}
	for _, fp := range factors {
		if fp.Poly.Deg() == 0 {
			t.Errorf("factor has degree 0: %v", fp.Poly)
		}
	}
}

func TestFactorRepeatedFactor(t *testing.T) {
	xp1 := Add(Monomial(1), One()) // X+1
	f := Mul(xp1, xp1)
	factors := Factor(f)
	if got := reconstructProduct(factors); !got.Equal(f) {
		t.Errorf("reconstructed product %v != original %v", got, f)
	}
	found := false
	for _, fp := range factors {
		if fp.Poly.Equal(xp1) && fp.Mult == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected (X+1)^2 to be reported with multiplicity 2, got %+v", factors)
	}
}

func TestFactorIrreducibleIsItself(t *testing.T) {
	irr := Add(Add(Monomial(3), Monomial(1)), One()) // X^3+X+1
	factors := Factor(irr)
	if len(factors) != 1 || !factors[0].Poly.Equal(irr) || factors[0].Mult != 1 {
		t.Errorf("Factor(irreducible) = %+v, want single factor of mult 1", factors)
	}
}
