package format

// Family is the hardware family reported by the kernel driver. Values
// ascend with hardware generation.
type Family uint32

// Family tier thresholds. A family at or above a threshold belongs to
// that generation's modifier tier.
const (
	// FamilyAI is the first generation with the GFX9 tiling encoding.
	FamilyAI Family = 141

	// FamilyNV is the first generation with the GFX10 tiling encoding.
	FamilyNV Family = 143

	// FamilyGC12 is the first generation with the GFX12 tiling
	// encoding.
	FamilyGC12 Family = 152
)

// generation is the catalog's hardware tier key.
type generation int

const (
	genLegacy generation = iota
	genAI
	genNV
	genGC12
)

// formats is the advertised pixel-format superset. It is identical
// across generations: whether a format can be decoded is a codec
// capability, unlike modifier support, which the memory controller
// gates per generation.
var formats = [...]Format{ARGB8888, XRGB8888, RGB565, ARGB1555, ARGB2101010}

// catalog maps each tier to its modifier list, linear first. Built once
// at load; read-only thereafter.
var catalog = map[generation][]Modifier{
	genLegacy: {ModifierLinear},
	genAI: {
		ModifierLinear,
		amdModifier(tileVerGFX9, tileGFX9_64K_S),
		amdModifier(tileVerGFX9, tileGFX9_64K_D),
	},
	genNV: {
		ModifierLinear,
		amdModifier(tileVerGFX10, tileGFX9_64K_R_X),
		amdModifier(tileVerGFX10, tileGFX9_64K_S_X),
		amdModifier(tileVerGFX9, tileGFX9_64K_S),
		amdModifier(tileVerGFX9, tileGFX9_64K_D),
	},
	genGC12: {
		ModifierLinear,
		amdModifier(tileVerGFX12, tileGFX12_256K2D),
		amdModifier(tileVerGFX12, tileGFX12_64K2D),
		amdModifier(tileVerGFX12, tileGFX12_256B2D),
		amdModifier(tileVerGFX9, tileGFX9_64K_S),
		amdModifier(tileVerGFX9, tileGFX9_64K_D),
	},
}

// generationOf walks the tier thresholds newest to oldest and returns
// the first tier the family meets.
func generationOf(fam Family) generation {
	switch {
	case fam >= FamilyGC12:
		return genGC12
	case fam >= FamilyNV:
		return genNV
	case fam >= FamilyAI:
		return genAI
	default:
		return genLegacy
	}
}

// Formats returns the advertised pixel formats. The caller owns the
// returned slice.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats[:])
	return out
}

// ModifiersFor returns the modifiers supported for f on the given
// hardware family, linear first. Unsupported formats advertise nothing.
// The caller owns the returned slice; the catalog never hands out
// references into its tables.
func ModifiersFor(f Format, fam Family) []Modifier {
	if !supported(f) {
		return nil
	}
	mods := catalog[generationOf(fam)]
	out := make([]Modifier, len(mods))
	copy(out, mods)
	return out
}

func supported(f Format) bool {
	for _, have := range formats {
		if have == f {
			return true
		}
	}
	return false
}
