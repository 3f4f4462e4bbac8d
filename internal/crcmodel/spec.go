// Package crcmodel holds the canonical CRC record, a forward evaluator
// used as a test oracle, and a small catalogue of well-known presets.
package crcmodel

import (
	"fmt"
	"math/big"
)

// Spec is a fully or partially specified CRC algorithm: width in bits,
// generator polynomial, initial register value, output XOR mask, and
// the two bit-reflection flags. Poly, Init and XorOut are *big.Int
// rather than a fixed uintN because widths up to 128 bits are in scope
// and Go has no native 128-bit integer.
type Spec struct {
	Width  int
	Poly   *big.Int
	Init   *big.Int
	XorOut *big.Int
	RefIn  bool
	RefOut bool
}

// Validate reports whether s is well-formed and fully specified: width
// within [1,128], poly with a nonzero constant term (a generator
// divisible by X could never distinguish the empty message from one
// whose last bit flipped), and every parameter within [0, 2^width).
func (s Spec) Validate() error {
	if s.Width < 1 || s.Width > 128 {
		return fmt.Errorf("crcmodel: width %d out of range [1,128]", s.Width)
	}
	if s.Poly == nil || s.Init == nil || s.XorOut == nil {
		return fmt.Errorf("crcmodel: poly, init and xorout must all be set")
	}
	if s.Poly.Bit(0) == 0 {
		return fmt.Errorf("crcmodel: poly must have a nonzero constant term")
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(s.Width))
	if s.Poly.Sign() < 0 || s.Poly.Cmp(limit) >= 0 {
		return fmt.Errorf("crcmodel: poly out of range for width %d", s.Width)
	}
	if s.Init.Sign() < 0 || s.Init.Cmp(limit) >= 0 {
		return fmt.Errorf("crcmodel: init out of range for width %d", s.Width)
	}
	if s.XorOut.Sign() < 0 || s.XorOut.Cmp(limit) >= 0 {
		return fmt.Errorf("crcmodel: xorout out of range for width %d", s.Width)
	}
	return nil
}

func (s Spec) String() string {
	return fmt.Sprintf("width=%d poly=%#x init=%#x xorout=%#x refin=%v refout=%v",
		s.Width, s.Poly, s.Init, s.XorOut, s.RefIn, s.RefOut)
}
