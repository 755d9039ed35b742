package dri3

import "github.com/gogpu/dri3/format"

// AllocatedBuffer is a buffer owned by the tiled allocator. Handle is
// the kernel GEM handle used for dma-buf export, Size the allocation
// size in bytes.
type AllocatedBuffer interface {
	Handle() uint32
	Size() uint64
}

// Allocator is the tiled-memory allocator (GBM-class library) used to
// import multi-plane buffers under a layout modifier and to recover the
// modifier of buffers it manages.
type Allocator interface {
	// ImportFDs imports all planes of a buffer together under the given
	// modifier. The allocator takes ownership of the fds on success; on
	// failure the caller retains them.
	ImportFDs(fds []int, width, height int, f format.Format, strides, offsets []int, modifier format.Modifier) (AllocatedBuffer, error)

	// Modifier reports the layout modifier of a buffer this allocator
	// created, if it can be determined.
	Modifier(b AllocatedBuffer) (format.Modifier, bool)

	// Destroy releases a buffer returned by ImportFDs.
	Destroy(b AllocatedBuffer)
}
