package format

// Modifier is a 64-bit vendor memory-layout tag: a vendor prefix in the
// top byte OR'd with a vendor-specific encoding of the tile layout.
// Beyond catalog validation the encoding is opaque to this driver.
type Modifier uint64

const (
	// ModifierLinear is plain linear row-major layout.
	ModifierLinear Modifier = 0

	// ModifierInvalid is the reserved sentinel meaning "no modifier":
	// on import, interpret the buffer via depth and bpp only; on
	// export, the true layout could not be determined.
	ModifierInvalid Modifier = 0x00ffffffffffffff
)

// AMD modifier encoding: vendor prefix in bits 56-63, tile mode in bits
// 8-12, tile version in bits 0-7.
const (
	vendorAMD = 0x02

	vendorShift      = 56
	tileShift        = 8
	tileVersionShift = 0
)

// Tile version field values, one per GPU generation encoding scheme.
const (
	tileVerGFX9  = 1
	tileVerGFX10 = 2
	tileVerGFX11 = 4
	tileVerGFX12 = 5
)

// Tile mode field values.
const (
	tileGFX9_64K_S   = 9  // 64KiB standard swizzle
	tileGFX9_64K_D   = 10 // 64KiB display swizzle
	tileGFX9_64K_S_X = 25
	tileGFX9_64K_R_X = 27
	tileGFX12_256B2D = 1
	tileGFX12_64K2D  = 3
	tileGFX12_256K2D = 4
)

// amdModifier assembles a vendor tile tag from a tile version and tile
// mode.
func amdModifier(version, tile uint64) Modifier {
	return Modifier(vendorAMD<<vendorShift | tile<<tileShift | version<<tileVersionShift)
}
