package crcrev

import "crcrev/internal/gf2"

// removeInits folds a known init value into every carrier: a Single(d)
// tag gets init*X^(8d) added to its polynomial and is retagged None,
// since the init contribution is now a concrete, known quantity rather
// than a symbolic unknown. A Pair tag is never expected to reach this
// stage (init elimination always runs before xorout elimination, the
// only stage that can introduce one).
func removeInits(carriers []carrier, init *gf2.Poly) []carrier {
	out := make([]carrier, len(carriers))
	for i, c := range carriers {
		switch c.Tag.kind {
		case kindNone:
			out[i] = c
		case kindSingle:
			p := c.Poly.Clone()
			term := init.Clone()
			term.ShlTo(8 * c.Tag.d1)
			p.AddTo(term)
			out[i] = carrier{Poly: p, Tag: noneTag(), Len: c.Len}
		default:
			panic("internal error: init pair reaching removeInits")
		}
	}
	return out
}
