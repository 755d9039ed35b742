package dri3

import "github.com/gogpu/dri3/internal/drmioctl"

// Kernel is the slice of the kernel DRM interface the engines touch.
// The default implementation issues real ioctls; tests substitute a fake
// via WithKernel.
type Kernel interface {
	// Open opens a device node read-write with close-on-exec and
	// returns its fd.
	Open(path string) (int, error)

	// Close closes an fd obtained from Open or ExportBuffer.
	Close(fd int) error

	// GetMagic requests an authentication magic number for fd. Render
	// nodes refuse with EACCES.
	GetMagic(fd int) (uint32, error)

	// AuthMagic authorizes magic against the already-authorized fd.
	AuthMagic(fd int, magic uint32) error

	// BufferSize queries the allocation size of the buffer behind a GEM
	// handle on fd.
	BufferSize(fd int, handle uint32) (uint64, error)

	// ExportBuffer exports the buffer behind a GEM handle on fd as a
	// dma-buf fd owned by the caller.
	ExportBuffer(fd int, handle uint32) (int, error)

	// CloseBuffer drops the GEM handle reference on fd.
	CloseBuffer(fd int, handle uint32) error
}

// drmKernel is the default Kernel backed by the DRM ioctl interface.
type drmKernel struct{}

func (drmKernel) Open(path string) (int, error)       { return drmioctl.OpenNode(path) }
func (drmKernel) Close(fd int) error                  { return drmioctl.CloseNode(fd) }
func (drmKernel) GetMagic(fd int) (uint32, error)     { return drmioctl.GetMagic(fd) }
func (drmKernel) AuthMagic(fd int, m uint32) error    { return drmioctl.AuthMagic(fd, m) }
func (drmKernel) BufferSize(fd int, h uint32) (uint64, error) {
	return drmioctl.BufferSize(fd, h)
}
func (drmKernel) ExportBuffer(fd int, h uint32) (int, error) {
	return drmioctl.PrimeHandleToFD(fd, h)
}
func (drmKernel) CloseBuffer(fd int, h uint32) error { return drmioctl.CloseBuffer(fd, h) }
