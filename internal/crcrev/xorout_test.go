package crcrev

import "testing"

func TestRemoveXoroutsUnknownXorout(t *testing.T) {
	c0 := carrier{Poly: polyFromBits(0), Tag: singleTag(1), Len: 1} // 1
	c1 := carrier{Poly: polyFromBits(1), Tag: singleTag(2), Len: 2} // X
	c2 := carrier{Poly: polyFromBits(2), Tag: singleTag(3), Len: 3} // X^2

	out, xc := removeXorouts([]carrier{c0, c1, c2}, nil)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}

	wantOut0 := polyFromBits(0, 1) // 1 + X
	if !out[0].Poly.Equal(wantOut0) || !out[0].Tag.equal(pairTag(1, 2)) {
		t.Errorf("out[0] = %+v, want poly=%s tag=Pair(1,2)", out[0], wantOut0)
	}

	wantOut1 := polyFromBits(1, 2) // X + X^2
	if !out[1].Poly.Equal(wantOut1) || !out[1].Tag.equal(pairTag(2, 3)) {
		t.Errorf("out[1] = %+v, want poly=%s tag=Pair(2,3)", out[1], wantOut1)
	}

	if !xc.Poly.Equal(c2.Poly) || !xc.Tag.equal(singleTag(3)) {
		t.Errorf("xorout carrier = %+v, want poly=%s tag=Single(3)", xc, c2.Poly)
	}
}

func TestRemoveXoroutsKnownXorout(t *testing.T) {
	k := polyFromBits(5)
	c0 := carrier{Poly: polyFromBits(0), Tag: singleTag(1), Len: 1}
	c1 := carrier{Poly: polyFromBits(1), Tag: singleTag(2), Len: 2}
	c2 := carrier{Poly: polyFromBits(2), Tag: singleTag(3), Len: 3}

	out, xc := removeXorouts([]carrier{c0, c1, c2}, &k)

	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	wantOut0 := polyFromBits(0, 5)
	wantOut1 := polyFromBits(1, 5)
	wantOut2 := polyFromBits(2, 5)
	if !out[0].Poly.Equal(wantOut0) || !out[0].Tag.equal(singleTag(1)) {
		t.Errorf("out[0] = %+v, want poly=%s tag=Single(1)", out[0], wantOut0)
	}
	if !out[1].Poly.Equal(wantOut1) || !out[1].Tag.equal(singleTag(2)) {
		t.Errorf("out[1] = %+v, want poly=%s tag=Single(2)", out[1], wantOut1)
	}
	if !out[2].Poly.Equal(wantOut2) || !out[2].Tag.equal(singleTag(3)) {
		t.Errorf("out[2] = %+v, want poly=%s tag=Single(3)", out[2], wantOut2)
	}
	if !xc.Poly.Equal(k) || xc.Tag.kind != kindNone {
		t.Errorf("xorout carrier = %+v, want poly=%s tag=None", xc, k)
	}
}
