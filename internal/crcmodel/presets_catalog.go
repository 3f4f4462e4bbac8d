package crcmodel

// The built-in catalogue covers the handful of CRC models this codebase
// exercises directly in its own tests and examples; it is not an
// attempt at the full CRC RevEng catalogue.

func init() {
	RegisterPreset(Preset{
		Name:   "crc-32",
		Width:  32,
		Poly:   hexBig("04C11DB7"),
		Init:   hexBig("FFFFFFFF"),
		XorOut: hexBig("FFFFFFFF"),
		RefIn:  refBool(true),
		RefOut: refBool(true),
	})
	RegisterPreset(Preset{
		Name:   "crc-32/bzip2",
		Width:  32,
		Poly:   hexBig("04C11DB7"),
		Init:   hexBig("FFFFFFFF"),
		XorOut: hexBig("FFFFFFFF"),
		RefIn:  refBool(false),
		RefOut: refBool(false),
	})
	RegisterPreset(Preset{
		Name:   "crc-16/arc",
		Width:  16,
		Poly:   hexBig("8005"),
		Init:   hexBig("0000"),
		XorOut: hexBig("0000"),
		RefIn:  refBool(true),
		RefOut: refBool(true),
	})
	RegisterPreset(Preset{
		Name:   "crc-16/ccitt-false",
		Width:  16,
		Poly:   hexBig("1021"),
		Init:   hexBig("FFFF"),
		XorOut: hexBig("0000"),
		RefIn:  refBool(false),
		RefOut: refBool(false),
	})
	RegisterPreset(Preset{
		Name:   "crc-8",
		Width:  8,
		Poly:   hexBig("07"),
		Init:   hexBig("00"),
		XorOut: hexBig("00"),
		RefIn:  refBool(false),
		RefOut: refBool(false),
	})
	// crc-16/arinc mirrors the ARINC 622/633 parameters (poly 0x1021,
	// init 0xFFFF, MSB-first) with width, poly and both reflection flags
	// known; init and xorout are left open since callers frequently need
	// to recover them from a captured message.
	RegisterPreset(Preset{
		Name:   "crc-16/arinc",
		Width:  16,
		Poly:   hexBig("1021"),
		RefIn:  refBool(false),
		RefOut: refBool(false),
	})
}
