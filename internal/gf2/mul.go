package gf2

// karatsubaThreshold is the word count below which schoolbook
// multiplication is used directly. Above it, Mul recurses via Karatsuba.
//
// Polynomials here routinely reach multi-million-bit degree, so a
// quadratic multiply is not viable; an FFT-based carryless multiply
// (Schönhage-Strassen over 𝔽₂[X]) would do better still, but that is a
// substantial undertaking on its own. Karatsuba gets to sub-quadratic
// (O(n^1.585)) while staying within reach of a from-scratch,
// dependency-free implementation.
const karatsubaThreshold = 48

// mulWord carryless-multiplies two 64-bit words, returning the full
// 128-bit product split into high and low 64-bit halves.
func mulWord(a, b uint64) (hi, lo uint64) {
	for i := 0; i < wordBits; i++ {
		if b&(1<<uint(i)) == 0 {
			continue
		}
		if i == 0 {
			lo ^= a
			continue
		}
		lo ^= a << uint(i)
		hi ^= a >> uint(wordBits-i)
	}
	return hi, lo
}

func mulWords(a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b))
	for i, aw := range a {
		if aw == 0 {
			continue
		}
		for j, bw := range b {
			if bw == 0 {
				continue
			}
			hi, lo := mulWord(aw, bw)
			out[i+j] ^= lo
			out[i+j+1] ^= hi
		}
	}
	return out
}

// karatsubaWords multiplies two word slices using the Karatsuba
// divide-and-conquer identity, which holds over any commutative ring
// (in particular 𝔽₂[X] with XOR playing the role of both + and -).
func karatsubaWords(a, b []uint64) []uint64 {
	n := len(a)
	if m := len(b); m > n {
		n = m
	}
	if n <= karatsubaThreshold {
		return mulWords(a, b)
	}
	half := n / 2
	aLo, aHi := splitWords(a, half)
	bLo, bHi := splitWords(b, half)

	z0 := karatsubaWords(aLo, bLo)
	z2 := karatsubaWords(aHi, bHi)

	aSum := xorWords(aLo, aHi)
	bSum := xorWords(bLo, bHi)
	z1 := karatsubaWords(aSum, bSum)
	z1 = xorWords(z1, z0)
	z1 = xorWords(z1, z2)

	total := len(z0)
	if v := half + len(z1); v > total {
		total = v
	}
	if v := 2*half + len(z2); v > total {
		total = v
	}
	out := make([]uint64, total)
	xorInto(out, z0, 0)
	xorInto(out, z1, half)
	xorInto(out, z2, 2*half)
	return out
}

func splitWords(a []uint64, at int) (lo, hi []uint64) {
	if at >= len(a) {
		return a, nil
	}
	return a[:at], a[at:]
}

func xorWords(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	copy(out, a)
	for i, bw := range b {
		out[i] ^= bw
	}
	return out
}

func xorInto(dst, src []uint64, offset int) {
	for i, v := range src {
		dst[offset+i] ^= v
	}
}

// MulTo sets p = p * q in place.
func (p *Poly) MulTo(q Poly) {
	*p = Mul(*p, q)
}

// Mul returns a * b.
func Mul(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	return Poly{w: karatsubaWords(a.w, b.w)}.trim()
}

// Sqr returns a * a. Squaring over 𝔽₂[X] is linear in the number of
// coefficients (it just spreads each bit two positions apart, with no
// cross terms, since (x+y)^2 = x^2+y^2 in characteristic 2) so it does
// not need the general Mul path.
func Sqr(a Poly) Poly {
	if a.IsZero() {
		return Zero()
	}
	out := make([]uint64, len(a.w)*2)
	for i, word := range a.w {
		lo, hi := spreadWord(word)
		out[2*i] = lo
		out[2*i+1] = hi
	}
	return Poly{w: out}.trim()
}

// SqrTo sets p = p * p in place.
func (p *Poly) SqrTo() {
	*p = Sqr(*p)
}

// spreadWord spreads the 64 bits of w two positions apart, producing a
// 128-bit result split into low/high 64-bit halves. This is the
// characteristic-2 squaring identity applied word-at-a-time.
func spreadWord(w uint64) (lo, hi uint64) {
	const (
		m0 = 0x00000000FFFFFFFF
		m1 = 0x0000FFFF0000FFFF
		m2 = 0x00FF00FF00FF00FF
		m3 = 0x0F0F0F0F0F0F0F0F
		m4 = 0x3333333333333333
		m5 = 0x5555555555555555
	)
	spread := func(x uint64) uint64 {
		x = (x | (x << 16)) & m1
		x = (x | (x << 8)) & m2
		x = (x | (x << 4)) & m3
		x = (x | (x << 2)) & m4
		x = (x | (x << 1)) & m5
		return x
	}
	lo = spread(w & m0)
	hi = spread(w >> 32)
	return lo, hi
}
