package dri3

import "errors"

// Failure taxonomy. Every operation reports failure synchronously to its
// caller; nothing is retried internally. Callers branch with errors.Is.
var (
	// ErrAllocation indicates a device node could not be opened or a
	// surface could not be allocated.
	ErrAllocation = errors.New("dri3: allocation failed")

	// ErrMismatch indicates the legacy magic authentication handshake
	// was refused by the kernel or by the authorizing device.
	ErrMismatch = errors.New("dri3: authentication refused")

	// ErrUnsupportedFormat indicates a depth, bpp or plane count outside
	// the supported sets.
	ErrUnsupportedFormat = errors.New("dri3: unsupported format")

	// ErrImportRejected indicates the underlying subsystem refused the
	// buffer on import.
	ErrImportRejected = errors.New("dri3: import rejected")

	// ErrOverflow indicates a stride exceeds the wire field width of the
	// export entry point in use.
	ErrOverflow = errors.New("dri3: stride exceeds wire field width")

	// ErrNoBuffer indicates a surface has no buffer object attached and
	// so cannot be exported through the direct path.
	ErrNoBuffer = errors.New("dri3: surface has no buffer object")
)
