package crcrev

import (
	"sort"

	"crcrev/internal/gf2"
)

// intake lifts each sample into a working polynomial: the message
// bytes shifted left by width bits (MSB-first, reflected per octet
// when refin), with the checksum (masked to width bits and reflected
// when refout) added into the low bits. Every carrier starts tagged
// with a Single init weight at its own byte length.
//
// The returned carriers are sorted ascending by byte length and, among
// equal lengths, descending by polynomial degree; later stages rely on
// this ordering both to locate the pivot for xorout elimination and to
// keep MemoPower's queries non-decreasing.
func intake(width int, refin, refout bool, samples []Sample) []carrier {
	carriers := make([]carrier, len(samples))
	for i, s := range samples {
		msg := gf2.FromBytesShifted(s.Bytes, width, refin)
		chk := maskBig(s.Checksum, width)
		if refout {
			chk = reflectBig(chk, width)
		}
		msg.AddTo(bigToPoly(chk))
		carriers[i] = carrier{Poly: msg, Tag: singleTag(len(s.Bytes)), Len: len(s.Bytes)}
	}
	sort.SliceStable(carriers, func(i, j int) bool {
		if carriers[i].Len != carriers[j].Len {
			return carriers[i].Len < carriers[j].Len
		}
		return carriers[i].Poly.Deg() > carriers[j].Poly.Deg()
	})
	return carriers
}

func allSameLength(samples []Sample) bool {
	if len(samples) == 0 {
		return true
	}
	first := len(samples[0].Bytes)
	for _, s := range samples[1:] {
		if len(s.Bytes) != first {
			return false
		}
	}
	return true
}
