package crcmodel

import "math/big"

// Eval computes the CRC checksum of data under spec, returning a value
// guaranteed to fit within spec.Width bits. It always runs the
// bit-by-bit register update rather than a lookup table, since spec
// can name any width and polynomial, not just a fixed one a table could
// be precomputed for; see BuildTable and EvalTable for the
// byte-aligned accelerated path. Widths up to 64 run over a native
// uint64 register; widths from 65 to 128 run the same algorithm driven
// through math/big, since no native integer is wide enough to hold the
// register.
func Eval(spec Spec, data []byte) (*big.Int, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Width <= 64 {
		return new(big.Int).SetUint64(eval64(spec, data)), nil
	}
	return evalBig(spec, data), nil
}

func widthMask64(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func reverseByte(b byte) byte {
	b = (b&0x0F)<<4 | (b&0xF0)>>4
	b = (b&0x33)<<2 | (b&0xCC)>>2
	b = (b&0x55)<<1 | (b&0xAA)>>1
	return b
}

func reverseBits64(v uint64, width uint) uint64 {
	var out uint64
	for i := uint(0); i < width; i++ {
		if v&(1<<i) != 0 {
			out |= 1 << (width - 1 - i)
		}
	}
	return out
}

// eval64 implements the classical bit-by-bit CRC register update in its
// direct form: each input bit (MSB first within a byte, after an
// optional per-byte reflection) is XORed with the bit shifted out of the
// top of the register, and the generator is XORed into the shifted
// register whenever that feedback bit is set. Init is loaded straight
// into the register, so no trailing flush of zero bits is needed; this
// is the same update the table-driven EvalTable performs a byte at a
// time.
func eval64(spec Spec, data []byte) uint64 {
	width := uint(spec.Width)
	mask := widthMask64(width)
	topBit := uint64(1) << (width - 1)
	poly := spec.Poly.Uint64() & mask
	reg := spec.Init.Uint64() & mask

	step := func(c uint64, nbits uint) {
		for j := nbits; j > 0; j-- {
			bitSet := c&(1<<(j-1)) != 0
			topSet := reg&topBit != 0
			reg = (reg << 1) & mask
			if bitSet != topSet {
				reg ^= poly
			}
		}
	}

	for _, b := range data {
		c := uint64(b)
		if spec.RefIn {
			c = uint64(reverseByte(b))
		}
		step(c, 8)
	}

	if spec.RefOut {
		reg = reverseBits64(reg, width)
	}
	return reg ^ (spec.XorOut.Uint64() & mask)
}

// evalBig is the same algorithm as eval64, rewritten over math/big for
// widths beyond 64 bits.
func evalBig(spec Spec, data []byte) *big.Int {
	width := uint(spec.Width)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), width), big.NewInt(1))
	poly := new(big.Int).And(spec.Poly, mask)
	reg := new(big.Int).And(spec.Init, mask)

	step := func(c uint64, nbits uint) {
		for j := nbits; j > 0; j-- {
			bitSet := c&(1<<(j-1)) != 0
			topSet := reg.Bit(int(width-1)) == 1
			reg.Lsh(reg, 1)
			reg.And(reg, mask)
			if bitSet != topSet {
				reg.Xor(reg, poly)
			}
		}
	}

	for _, b := range data {
		c := uint64(b)
		if spec.RefIn {
			c = uint64(reverseByte(b))
		}
		step(c, 8)
	}

	if spec.RefOut {
		out := new(big.Int)
		for i := uint(0); i < width; i++ {
			if reg.Bit(int(i)) == 1 {
				out.SetBit(out, int(width-1-i), 1)
			}
		}
		reg = out
	}
	reg.Xor(reg, new(big.Int).And(spec.XorOut, mask))
	return reg
}
