package dri3

// Backing identifies what owns a buffer object's GPU memory: either a
// buffer managed by the tiled allocator or a raw kernel GEM handle. Use
// sites match on the concrete type.
type Backing interface {
	isBacking()
}

// AllocatorBacking is storage imported or allocated through the tiled
// allocator. Its modifier can be recovered via Allocator.Modifier.
type AllocatorBacking struct {
	Buffer AllocatedBuffer
}

// KernelBacking is storage referenced directly by a kernel GEM handle.
// Legacy proprietary tiling metadata on such buffers is not translated
// to a modifier; they export as linear.
type KernelBacking struct {
	Handle uint32
}

func (AllocatorBacking) isBacking() {}
func (KernelBacking) isBacking()    {}

// BufferObject is the driver-internal representation of GPU-resident
// memory. A surface owns at most one buffer object at a time; ownership
// transfers on re-backing.
type BufferObject struct {
	backing Backing
}

// NewAllocatorBuffer wraps an allocator-managed buffer.
func NewAllocatorBuffer(b AllocatedBuffer) *BufferObject {
	return &BufferObject{backing: AllocatorBacking{Buffer: b}}
}

// NewKernelBuffer wraps a kernel GEM handle.
func NewKernelBuffer(handle uint32) *BufferObject {
	return &BufferObject{backing: KernelBacking{Handle: handle}}
}

// Backing returns the buffer's storage variant.
func (bo *BufferObject) Backing() Backing { return bo.backing }

// ReleaseBuffer frees the storage behind bo: allocator-managed buffers
// go back to the allocator, kernel handles are closed on the server's
// device fd. The host calls this when the owning surface is destroyed
// or re-backed.
func (scr *Screen) ReleaseBuffer(bo *BufferObject) {
	if bo == nil {
		return
	}
	switch b := bo.backing.(type) {
	case AllocatorBacking:
		if scr.alloc != nil {
			scr.alloc.Destroy(b.Buffer)
		}
	case KernelBacking:
		if err := scr.kernel.CloseBuffer(scr.fd, b.Handle); err != nil {
			scr.log.Warn("buffer handle close failed", "handle", b.Handle, "err", err)
		}
	}
	bo.backing = nil
}
