package crcrev

import "crcrev/internal/gf2"

// findProdComb enumerates every degree-width product obtainable by
// picking, independently for each irreducible factor of a hull's
// factorization, some power of that factor between 0 (omit it) and its
// multiplicity. It runs a subset-product dynamic program bucketed by
// degree: processing one factor at a time, each new power of it either
// stands alone in its own degree bucket or multiplies onto every
// product already recorded in a bucket left over from the factors
// processed so far. The snapshot taken before each factor's own
// contributions keeps its own powers from combining with each other.
func findProdComb(width int, factors []gf2.FactorPower) []gf2.Poly {
	buckets := make([][]gf2.Poly, width+1)

	for _, fp := range factors {
		snapshot := make([][]gf2.Poly, width+1)
		for i := range buckets {
			snapshot[i] = append([]gf2.Poly(nil), buckets[i]...)
		}

		q := fp.Poly.Clone()
		for power := 1; power <= fp.Mult; power++ {
			deg := q.Deg()
			if deg > width {
				break
			}
			buckets[deg] = append(buckets[deg], q.Clone())
			for j := 0; j <= width-deg; j++ {
				for _, m := range snapshot[j] {
					buckets[j+deg] = append(buckets[j+deg], gf2.Mul(q, m))
				}
			}
			q = gf2.Mul(q, fp.Poly)
		}
	}

	return buckets[width]
}
