package scene

// RGB is a 24-bit material color
type RGB struct {
	R, G, B uint8
}

// Hex converts a 0xRRGGBB literal
func Hex(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Uint32 returns the 0xRRGGBB form
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
