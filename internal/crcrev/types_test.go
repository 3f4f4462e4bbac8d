package crcrev

import "testing"

func TestCombineTagNoneAbsorbs(t *testing.T) {
	got := combineTag(noneTag(), singleTag(3))
	if !got.equal(singleTag(3)) {
		t.Errorf("combineTag(None, Single(3)) = %+v, want Single(3)", got)
	}
	got = combineTag(singleTag(5), noneTag())
	if !got.equal(singleTag(5)) {
		t.Errorf("combineTag(Single(5), None) = %+v, want Single(5)", got)
	}
}

func TestCombineTagMatchingSinglesCancel(t *testing.T) {
	got := combineTag(singleTag(4), singleTag(4))
	if !got.equal(noneTag()) {
		t.Errorf("combineTag(Single(4), Single(4)) = %+v, want None", got)
	}
}

func TestCombineTagDistinctSinglesPair(t *testing.T) {
	got := combineTag(singleTag(7), singleTag(2))
	want := pairTag(2, 7)
	if !got.equal(want) {
		t.Errorf("combineTag(Single(7), Single(2)) = %+v, want %+v", got, want)
	}
}

func TestCombineTagPairPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when a Pair tag reaches combineTag")
		}
	}()
	combineTag(pairTag(1, 2), singleTag(3))
}

func TestPairTagCanonicalizesOrder(t *testing.T) {
	a := pairTag(5, 1)
	b := pairTag(1, 5)
	if !a.equal(b) {
		t.Errorf("pairTag(5,1) = %+v, pairTag(1,5) = %+v, want equal", a, b)
	}
}

func TestWeightPolySingle(t *testing.T) {
	w := weightPoly(singleTag(3), 1)
	if w.Deg() != 16 {
		t.Errorf("weightPoly(Single(3), min=1).Deg() = %d, want 16", w.Deg())
	}
}

func TestWeightPolyPair(t *testing.T) {
	w := weightPoly(pairTag(1, 3), 1)
	if !w.Bit(0) || !w.Bit(16) {
		t.Errorf("weightPoly(Pair(1,3), min=1) missing expected bits: %s", w)
	}
}
