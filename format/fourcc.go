package format

// Format is a DRM fourcc pixel format code, little-endian packed.
type Format uint32

// Supported fourcc codes.
const (
	ARGB8888    Format = 'A' | 'R'<<8 | '2'<<16 | '4'<<24 // [31:0] A:R:G:B 8:8:8:8
	XRGB8888    Format = 'X' | 'R'<<8 | '2'<<16 | '4'<<24 // [31:0] x:R:G:B 8:8:8:8
	RGB565      Format = 'R' | 'G'<<8 | '1'<<16 | '6'<<24 // [15:0] R:G:B 5:6:5
	ARGB1555    Format = 'A' | 'R'<<8 | '1'<<16 | '5'<<24 // [15:0] A:R:G:B 1:5:5:5
	ARGB2101010 Format = 'A' | 'R'<<8 | '3'<<16 | '0'<<24 // [31:0] A:R:G:B 2:10:10:10
)

// String returns the four-character code.
func (f Format) String() string {
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
}

// FromDepth translates a declared drawable depth to its fourcc code.
// Only the depths the hardware scans out are mapped; ok is false for
// anything else.
func FromDepth(depth int) (f Format, ok bool) {
	switch depth {
	case 15:
		return ARGB1555, true
	case 16:
		return RGB565, true
	case 24:
		return XRGB8888, true
	case 30:
		return ARGB2101010, true
	case 32:
		return ARGB8888, true
	}
	return 0, false
}
