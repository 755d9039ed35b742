package dri3

// Surface is the host's generic drawable. The engines import into and
// export from surfaces but never own them; creation and destruction go
// through the Host.
//
// Stride is in bytes per row. Depth is the declared color depth, BPP the
// storage bits per pixel.
type Surface interface {
	Width() int
	Height() int
	Depth() int
	BPP() int
	Stride() int

	// ModifyHeader rewrites the surface's geometry without reallocating
	// its storage. Zero width, height, depth or bpp keep the current
	// value. Reports whether the rewrite was accepted.
	ModifyHeader(width, height, depth, bpp, stride int) bool

	// SetSharedBacking attaches fd as the surface's backing store,
	// taking ownership of the descriptor. Reports whether the backing
	// was accepted; on false the caller still owns fd.
	SetSharedBacking(fd int) bool

	// MarkShared flags the surface's storage as externally shared so
	// the host skips the kernel-name generation it would otherwise
	// perform for it.
	MarkShared()

	// Private and SetPrivate store the driver's opaque per-surface
	// record. The host releases the record together with the surface.
	Private() any
	SetPrivate(any)
}

// importRecord is the opaque private record attached to surfaces that
// were created by import or re-backed with a driver buffer object.
type importRecord struct {
	bo *BufferObject
}

// AttachBuffer attaches bo as the surface's backing buffer object,
// replacing any previous one. The driver's pixmap layer calls this when
// it re-backs a drawable; ownership of bo transfers to the surface.
func AttachBuffer(s Surface, bo *BufferObject) {
	if rec, ok := s.Private().(*importRecord); ok {
		rec.bo = bo
		return
	}
	s.SetPrivate(&importRecord{bo: bo})
}

// SurfaceBuffer returns the buffer object backing s, or nil if none is
// attached.
func SurfaceBuffer(s Surface) *BufferObject {
	if rec, ok := s.Private().(*importRecord); ok {
		return rec.bo
	}
	return nil
}

// markImported stamps a freshly imported surface: it gets a private
// record (if the backing step did not already attach one) and the
// externally-shared usage flag.
func markImported(s Surface) {
	if _, ok := s.Private().(*importRecord); !ok {
		s.SetPrivate(&importRecord{})
	}
	s.MarkShared()
}
