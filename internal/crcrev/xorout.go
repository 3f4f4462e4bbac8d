package crcrev

import "crcrev/internal/gf2"

// removeXorouts eliminates xorout from every carrier but one, which is
// split off as the xorout carrier: the last (longest) polynomial after
// intake's sort if xorout is unknown, or xorout itself (tagged None)
// if it is known — in which case the longest carrier instead gets
// xorout added in and is kept as a working polynomial like the rest.
//
// The remaining carriers are visited from the one adjacent to the
// pivot down to the shortest, each replaced by its difference (or, when
// xorout is known and the two tags differ or are both None, by itself
// plus xorout) with the previous carrier in the scan. Differencing cancels xorout exactly
// when both sides carry the same unknown xorout contribution, which is
// always true, and cancels init's symbolic weight only when the tags
// agree — otherwise the two weights combine into a Pair.
//
// The result preserves ascending length order, since each output slot
// is written back to the index of the carrier it replaces and the
// optional xorout-known entry (associated with the longest file) is
// appended last.
func removeXorouts(carriers []carrier, xorout *gf2.Poly) ([]carrier, carrier) {
	n := len(carriers)
	pivot := carriers[n-1]
	rest := carriers[:n-1]

	out := make([]carrier, len(rest))
	var xc carrier
	if xorout != nil {
		xc = carrier{Poly: xorout.Clone(), Tag: noneTag()}
	} else {
		xc = carrier{Poly: pivot.Poly.Clone(), Tag: pivot.Tag, Len: pivot.Len}
	}

	prev := pivot
	for i := len(rest) - 1; i >= 0; i-- {
		cur := rest[i]
		useDiff := xorout == nil || (cur.Tag.kind != kindNone && cur.Tag.equal(prev.Tag))
		var nc carrier
		if useDiff {
			p := cur.Poly.Clone()
			p.AddTo(prev.Poly)
			nc = carrier{Poly: p, Tag: combineTag(prev.Tag, cur.Tag), Len: cur.Len}
		} else {
			p := cur.Poly.Clone()
			p.AddTo(*xorout)
			nc = carrier{Poly: p, Tag: cur.Tag, Len: cur.Len}
		}
		out[i] = nc
		prev = cur
	}

	if xorout != nil {
		sum := pivot.Poly.Clone()
		sum.AddTo(*xorout)
		out = append(out, carrier{Poly: sum, Tag: pivot.Tag, Len: pivot.Len})
	}

	return out, xc
}
