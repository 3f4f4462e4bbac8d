// Package crcrev recovers CRC parameters from byte sequences paired with
// known checksums and partial knowledge of the algorithm, by lifting
// everything into 𝔽₂[X] and solving simultaneously for the generator
// polynomial, the initial register value, and the output XOR mask.
package crcrev

import (
	"fmt"
	"math/big"

	"crcrev/internal/crcmodel"
	"crcrev/internal/gf2"
)

// Builder carries whatever subset of a CRC algorithm's parameters is
// already known. Width must always be supplied; the remaining fields
// are nil/unset to mean "unknown, solve for it".
type Builder struct {
	Width  int
	Poly   *big.Int
	Init   *big.Int
	XorOut *big.Int
	RefIn  *bool
	RefOut *bool
}

// Sample pairs a byte sequence with its known checksum under the
// algorithm being recovered.
type Sample struct {
	Bytes    []byte
	Checksum *big.Int
}

// Result is one element of Reverse's output sequence: either a fully
// specified candidate or the validation error that ended its branch.
type Result struct {
	Spec Spec
	Err  error
}

// Spec is the candidate CRC algorithm a Result carries: an alias for
// crcmodel.Spec so callers never need to convert between the two
// packages' records.
type Spec = crcmodel.Spec

// MissingParameterError reports that not enough information was given
// to attempt recovery at all.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("crcrev: missing parameter: %s", e.Name)
}

// UnsuitableFilesError reports that the given samples cannot possibly
// constrain the unknowns (e.g. every sample has the same length while
// init is unknown).
type UnsuitableFilesError struct {
	Reason string
}

func (e *UnsuitableFilesError) Error() string {
	return fmt.Sprintf("crcrev: unsuitable files: %s", e.Reason)
}

const (
	kindNone byte = iota
	kindSingle
	kindPair
)

// initPlace is the symbolic weight of the still-unknown init register
// attached to a working polynomial: none (already eliminated), a single
// X^(8d) term, or the sum of two such terms with distinct exponents.
type initPlace struct {
	kind   byte
	d1, d2 int
}

func noneTag() initPlace { return initPlace{kind: kindNone} }

func singleTag(d int) initPlace { return initPlace{kind: kindSingle, d1: d} }

func pairTag(d1, d2 int) initPlace {
	if d1 == d2 {
		panic("internal error: pairTag requires distinct exponents")
	}
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	return initPlace{kind: kindPair, d1: d1, d2: d2}
}

func (t initPlace) equal(u initPlace) bool {
	return t.kind == u.kind && t.d1 == u.d1 && t.d2 == u.d2
}

func (t initPlace) exponents() []int {
	switch t.kind {
	case kindSingle:
		return []int{t.d1}
	case kindPair:
		return []int{t.d1, t.d2}
	default:
		return nil
	}
}

// combineTag folds two surviving InitPlace tags when the carrier they
// describe is replaced by their difference: None absorbs, matching
// Single tags cancel to None, and distinct Single tags become a Pair.
// A Pair reaching this point is always a defect: the invariant in force
// up to this stage guarantees every input tag is None or Single.
func combineTag(a, b initPlace) initPlace {
	switch {
	case a.kind == kindPair || b.kind == kindPair:
		panic("internal error: init pair in the input array of removeXorouts")
	case a.kind == kindNone:
		return b
	case b.kind == kindNone:
		return a
	case a.d1 == b.d1:
		return noneTag()
	default:
		return pairTag(a.d1, b.d1)
	}
}

// carrier is a working polynomial paired with the byte length it came
// from and the symbolic init weight still attached to it.
type carrier struct {
	Poly gf2.Poly
	Tag  initPlace
	Len  int
}

func minInts(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func weightPoly(t initPlace, min int) gf2.Poly {
	w := gf2.Zero()
	for _, d := range t.exponents() {
		w.AddTo(gf2.Monomial(8 * (d - min)))
	}
	return w
}
