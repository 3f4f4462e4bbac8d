package crcrev

import (
	"math/big"

	"crcrev/internal/gf2"
)

// bigToPoly reinterprets v's big-endian byte representation as a
// polynomial with no shift and no bit reflection: a plain integer to
// polynomial coefficient-vector conversion.
func bigToPoly(v *big.Int) gf2.Poly {
	return gf2.FromBytesShifted(v.Bytes(), 0, false)
}

// polyToBig converts p back to an integer by reading off its
// coefficients as a big-endian byte string of n bytes.
func polyToBig(p gf2.Poly, n int) *big.Int {
	return new(big.Int).SetBytes(p.Bytes(n))
}

func maskBig(v *big.Int, width int) *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(width))
	limit.Sub(limit, big.NewInt(1))
	return new(big.Int).And(v, limit)
}

// reflectBig reverses the low width bits of v, leaving higher bits (if
// any) at zero.
func reflectBig(v *big.Int, width int) *big.Int {
	out := new(big.Int)
	for i := 0; i < width; i++ {
		if v.Bit(i) == 1 {
			out.SetBit(out, width-1-i, 1)
		}
	}
	return out
}

func byteLen(width int) int {
	return (width + 7) / 8
}
